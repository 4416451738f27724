package livehub

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxClientMessageSize = 512
)

// subscriber is one viewer connection. The hub never writes to the socket
// directly; everything goes through the bounded send queue so one stalled
// viewer cannot hold up scoring or other viewers.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once

	// matchID is guarded by the hub mutex.
	matchID string
}

func newSubscriber(conn *websocket.Conn, queueSize int) *subscriber {
	return &subscriber{
		conn: conn,
		send: make(chan []byte, queueSize),
		done: make(chan struct{}),
	}
}

// enqueue appends a payload, dropping the oldest queued payload when the
// queue is full. Every payload is a complete snapshot, so dropping
// intermediate ones costs a slow viewer staleness, never correctness.
func (s *subscriber) enqueue(payload []byte) {
	for {
		select {
		case <-s.done:
			return
		case s.send <- payload:
			return
		default:
		}

		select {
		case <-s.send:
		default:
		}
	}
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// writeLoop drains the send queue onto the socket. Any write error tears the
// connection down; the hub notices through the unregister callback.
func (s *subscriber) writeLoop(unregister func(*subscriber)) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
		unregister(s)
	}()

	for {
		select {
		case <-s.done:
			return
		case payload := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
