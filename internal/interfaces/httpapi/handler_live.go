package httpapi

import (
	"net/http"
)

// LiveWebsocket upgrades the connection and hands it to the hub. The hub owns
// the connection from that point on, including the close handshake.
func (h *Handler) LiveWebsocket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveWebsocket")
	defer span.End()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	h.hub.ServeConn(ctx, conn)
}
