package livehub

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/usecase"
	"github.com/sourcegraph/conc"
	"github.com/valyala/bytebufferpool"
)

const defaultQueueSize = 32

// SnapshotSource serves the full viewer payload for a match so a joining or
// reconnecting viewer starts from current truth instead of waiting for the
// next delivery. ResyncSnapshot must invoke deliver under the same per-match
// lock that serializes Publish calls for the match.
type SnapshotSource interface {
	ResyncSnapshot(ctx context.Context, matchID string, deliver func(usecase.LiveMatchData)) error
}

// Hub fans match snapshots out to websocket viewers grouped by match.
type Hub struct {
	snapshots SnapshotSource
	logger    *logging.Logger
	queueSize int

	mu     sync.Mutex
	closed bool
	rooms  map[string]map[*subscriber]struct{}
	subs   map[*subscriber]struct{}
}

func New(snapshots SnapshotSource, logger *logging.Logger, queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Hub{
		snapshots: snapshots,
		logger:    logger,
		queueSize: queueSize,
		rooms:     make(map[string]map[*subscriber]struct{}),
		subs:      make(map[*subscriber]struct{}),
	}
}

// ServeConn owns the connection until the viewer disconnects or the hub
// closes. It runs the read loop inline and the write loop on a goroutine.
func (h *Hub) ServeConn(ctx context.Context, conn *websocket.Conn) {
	sub := newSubscriber(conn, h.queueSize)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go sub.writeLoop(h.unregister)
	h.readLoop(ctx, sub)
}

func (h *Hub) readLoop(ctx context.Context, sub *subscriber) {
	defer func() {
		sub.close()
		h.unregister(sub)
	}()

	sub.conn.SetReadLimit(maxClientMessageSize)
	sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		sub.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := sub.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("viewer read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			h.sendError(sub, "malformed message")
			continue
		}

		switch msg.Type {
		case clientTypeJoinMatch:
			h.joinMatch(ctx, sub, msg.MatchID)
		default:
			h.sendError(sub, "unknown message type")
		}
	}
}

// joinMatch moves the viewer into the match's room and replies with the full
// current snapshot. Joining again with a different match leaves the old room.
//
// Room entry happens before the snapshot is built, and the source builds and
// delivers it under the match's publish lock. An update published before the
// build reaches the queue first but is older than the snapshot; one published
// after waits for the build and lands behind it. The viewer never steps
// backwards and never misses the delivery that would bring it current.
func (h *Hub) joinMatch(ctx context.Context, sub *subscriber, matchID string) {
	if matchID == "" {
		h.sendError(sub, "matchId is required")
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.moveToRoomLocked(sub, matchID)
	h.mu.Unlock()

	err := h.snapshots.ResyncSnapshot(ctx, matchID, func(data usecase.LiveMatchData) {
		payload, encodeErr := encodeMessage(serverMessage{Type: serverTypeSnapshot, MatchID: matchID, Data: data})
		if encodeErr != nil {
			h.logger.Error("encode snapshot failed", "match_id", matchID, "error", encodeErr)
			return
		}
		sub.enqueue(payload)
	})
	if err != nil {
		h.logger.Warn("snapshot for join failed", "match_id", matchID, "error", err)
		h.mu.Lock()
		h.removeFromRoomLocked(sub)
		h.mu.Unlock()
		h.sendError(sub, "unknown match")
	}
}

// Publish encodes once and enqueues to every viewer of the match. Order of
// enqueues matches call order because the whole pass holds the hub lock, and
// the per-subscriber queues preserve it from there.
func (h *Hub) Publish(matchID, kind string, data usecase.LiveMatchData) {
	payload, err := encodeMessage(serverMessage{Type: kind, MatchID: matchID, Data: data})
	if err != nil {
		h.logger.Error("encode publish failed", "match_id", matchID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for sub := range h.rooms[matchID] {
		sub.enqueue(payload)
	}
}

// Close tears down every connection concurrently and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	subs := make([]*subscriber, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.subs = make(map[*subscriber]struct{})
	h.rooms = make(map[string]map[*subscriber]struct{})
	h.mu.Unlock()

	var wg conc.WaitGroup
	for _, sub := range subs {
		sub := sub
		wg.Go(func() {
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			sub.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			sub.close()
		})
	}
	wg.Wait()
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs, sub)
	h.removeFromRoomLocked(sub)
}

func (h *Hub) moveToRoomLocked(sub *subscriber, matchID string) {
	h.removeFromRoomLocked(sub)

	room, ok := h.rooms[matchID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[matchID] = room
	}
	room[sub] = struct{}{}
	sub.matchID = matchID
}

func (h *Hub) removeFromRoomLocked(sub *subscriber) {
	if sub.matchID == "" {
		return
	}
	if room, ok := h.rooms[sub.matchID]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, sub.matchID)
		}
	}
	sub.matchID = ""
}

func (h *Hub) sendError(sub *subscriber, reason string) {
	payload, err := encodeMessage(errorMessage{Type: serverTypeError, Error: reason})
	if err != nil {
		return
	}
	sub.enqueue(payload)
}

// encodeMessage serializes through a pooled buffer and hands back a private
// copy, since the same payload is enqueued to many subscribers.
func encodeMessage(msg any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(msg); err != nil {
		return nil, err
	}
	payload := make([]byte, buf.Len())
	copy(payload, buf.B)
	return bytes.TrimRight(payload, "\n"), nil
}
