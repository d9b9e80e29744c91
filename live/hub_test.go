package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client

	payload := map[string]string{"type": "order_created", "orderId": "ord-1"}
	data, _ := json.Marshal(payload)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 1)}
	hub.register <- client

	hub.Stop()

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for close")
	}
}
