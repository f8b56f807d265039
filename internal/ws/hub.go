package ws

import (
	"log"
	"sync"
)

// Hub fans board events out to the browser sessions watching the job list.
// A session that stops draining its buffer is dropped on the spot so one
// stalled tab cannot hold the feed back.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*Client]struct{}

	events     chan []byte
	register   chan *Client
	unregister chan *Client

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions:   make(map[*Client]struct{}),
		events:     make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case session := <-h.register:
			if session == nil {
				continue
			}
			h.mu.Lock()
			h.sessions[session] = struct{}{}
			total := len(h.sessions)
			h.mu.Unlock()
			h.logf("[WS] Session joined | total=%d", total)

		case session := <-h.unregister:
			if session == nil {
				continue
			}
			h.mu.Lock()
			h.drop(session)
			total := len(h.sessions)
			h.mu.Unlock()
			h.logf("[WS] Session left | total=%d", total)

		case event := <-h.events:
			// Slow sessions are removed inline, under the same lock.
			// Feeding them back through the unregister channel would let a
			// large broadcast fill it and wedge this loop on itself.
			h.mu.Lock()
			dropped := 0
			for session := range h.sessions {
				select {
				case session.send <- event:
				default:
					h.drop(session)
					dropped++
				}
			}
			h.mu.Unlock()
			if dropped > 0 {
				h.logf("[WS] Slow sessions dropped | count=%d", dropped)
			}
		}
	}
}

// drop removes a session and closes its send channel. Callers hold h.mu.
func (h *Hub) drop(session *Client) {
	if _, ok := h.sessions[session]; !ok {
		return
	}
	delete(h.sessions, session)
	close(session.send)
}

func (h *Hub) Register(session *Client) {
	if h == nil {
		return
	}
	h.register <- session
}

func (h *Hub) Unregister(session *Client) {
	if h == nil {
		return
	}
	h.unregister <- session
}

// Broadcast is fire-and-forget: when the event buffer is full the message is
// discarded rather than blocking the caller.
func (h *Hub) Broadcast(event []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event:
	default:
		h.logf("[WS] Broadcast dropped | reason=buffer_full")
	}
}

func (h *Hub) SessionCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
