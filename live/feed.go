package live

import (
	"context"
	"log"
	"net/http"

	"tradehub/rdx"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// OrderEventsChannel is the Redis pub/sub channel carrying order events.
const OrderEventsChannel = "order-events"

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// FeedHandler upgrades the connection and streams order events to the
// client until it disconnects. The feed is one-way; inbound frames are
// discarded.
func FeedHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("feed upgrade:", err)
			return
		}
		client := &Client{Send: make(chan []byte, 256)}

		hub.register <- client
		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.unregister <- c
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// StartOrderFeedWorker subscribes to the order events channel and relays
// every payload into the hub. Returns when ctx is cancelled.
func StartOrderFeedWorker(ctx context.Context, hub *Hub) {
	sub := rdx.Conn.Subscribe(ctx, OrderEventsChannel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("[OrderFeed] Listening for order events...")
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.Broadcast([]byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
