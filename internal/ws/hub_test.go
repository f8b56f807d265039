package ws

import (
	"testing"
	"time"
)

func waitForSessionCount(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.SessionCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("session count stuck at %d, want %d", h.SessionCount(), want)
}

func TestHub_BroadcastReachesSessions(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	session := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(session)
	waitForSessionCount(t, h, 1)

	h.Broadcast([]byte(`{"type":"job_saved"}`))

	select {
	case got := <-session.send:
		if string(got) != `{"type":"job_saved"}` {
			t.Fatalf("unexpected event: %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event never delivered")
	}
}

func TestHub_UnregisterRemovesSession(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	session := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(session)
	waitForSessionCount(t, h, 1)

	h.Unregister(session)
	waitForSessionCount(t, h, 0)

	if _, open := <-session.send; open {
		t.Fatalf("send channel left open after unregister")
	}
}

func TestHub_DropsManySlowSessionsInOneBroadcast(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	// Well past the unregister channel's buffer; a hub that re-queues slow
	// sessions through that channel wedges here instead of finishing.
	const slow = 300
	for i := 0; i < slow; i++ {
		h.Register(&Client{hub: h, send: make(chan []byte)})
	}
	waitForSessionCount(t, h, slow)

	h.Broadcast([]byte(`{"type":"job_saved"}`))
	waitForSessionCount(t, h, 0)
}
