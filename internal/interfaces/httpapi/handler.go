package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/cricket-live/internal/livehub"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

type Handler struct {
	matchService   *usecase.MatchService
	sessionService *usecase.SessionService
	hub            *livehub.Hub
	logger         *slog.Logger
	validator      *validator.Validate
	upgrader       websocket.Upgrader
}

func NewHandler(
	matchService *usecase.MatchService,
	sessionService *usecase.SessionService,
	hub *livehub.Hub,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		matchService:   matchService,
		sessionService: sessionService,
		hub:            hub,
		logger:         logger,
		validator:      validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Viewer endpoint is anonymous and read-only, so any origin may
			// connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
