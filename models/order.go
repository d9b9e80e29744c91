package models

import "time"

// Order lifecycle states. Delivered and cancelled are terminal.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderProcessing,
	OrderShipped, OrderDelivered, OrderCancelled,
}

// Payment methods accepted at checkout. Cash on delivery is the default.
const (
	PaymentCOD       = "cod"
	PaymentCard      = "card"
	PaymentEasypaisa = "easypaisa"
	PaymentJazzcash  = "jazzcash"
)

var PaymentMethods = []string{PaymentCOD, PaymentCard, PaymentEasypaisa, PaymentJazzcash}

// Customer holds the contact and delivery details captured at checkout.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
}

// OrderItem is a denormalized line-item snapshot. Name, price and image are
// copied at order time so later catalog edits never alter a placed order.
type OrderItem struct {
	ProductSlug string  `json:"productSlug" bson:"productSlug"`
	Name        string  `json:"name" bson:"name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"` // unit price at purchase time
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Order represents a finalized order.
type Order struct {
	OrderID       string      `json:"orderId" bson:"orderId"`
	Customer      Customer    `json:"customer" bson:"customer"`
	Items         []OrderItem `json:"items" bson:"items"`
	TotalAmount   float64     `json:"totalAmount" bson:"totalAmount"` // recomputed server-side
	Status        string      `json:"status" bson:"status"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentMethod"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// ValidOrderStatus reports whether s belongs to the fixed lifecycle set.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TerminalOrderStatus reports whether s accepts no further transitions.
func TerminalOrderStatus(s string) bool {
	return s == OrderDelivered || s == OrderCancelled
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// OrderEvent is published on the order events channel whenever an order is
// created or changes status.
type OrderEvent struct {
	Type        string    `json:"type"` // "order_created" | "status_changed"
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount,omitempty"`
	At          time.Time `json:"at"`
}
