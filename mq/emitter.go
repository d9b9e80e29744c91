package mq

import (
	"context"
	"encoding/json"
	"log"

	"tradehub/models"
	"tradehub/rdx"
)

const orderEventsChannel = "order-events"

// Emit publishes an order event to the Redis order-events channel. Failures
// are logged and swallowed; the order itself is already durable by the time
// an event is emitted.
func Emit(ctx context.Context, event models.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, orderEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event: %v", err)
	}
}
