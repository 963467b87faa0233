package chat

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "chat:user1:provider1",
	}
	hub.Register(client)

	msg := outboundPayload{Action: "chat", Content: "hello test"}
	data, _ := json.Marshal(msg)
	hub.Broadcast("chat:user1:provider1", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.Unregister(client)
}

func TestHubRoomIsolation(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), Room: "chat:u1:p1"}
	b := &Client{Send: make(chan []byte, 10), Room: "chat:u2:p2"}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast("chat:u1:p1", []byte("only for a"))

	select {
	case <-a.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message in room a")
	}

	select {
	case got := <-b.Send:
		t.Fatalf("room b received stray message %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// No buffer and nobody reading: first broadcast cannot be delivered
	// and the hub must evict the client instead of blocking.
	slow := &Client{Send: make(chan []byte), Room: "chat:u1:p1"}
	hub.Register(slow)

	hub.Broadcast("chat:u1:p1", []byte("one"))
	hub.Broadcast("chat:u1:p1", []byte("two"))

	deadline := time.After(1 * time.Second)
	for {
		if hub.RoomSize("chat:u1:p1") == 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("slow consumer was never evicted")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
