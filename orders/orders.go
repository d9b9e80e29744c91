package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tradehub/db"
	"tradehub/models"
	"tradehub/mq"
	"tradehub/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// createOrderRequest is the checkout payload. Item prices are the ones the
// customer saw; the total is recomputed here and never taken from the client.
type createOrderRequest struct {
	Customer      models.Customer    `json:"customer"`
	Items         []models.OrderItem `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes"`
}

func validateCustomer(c models.Customer) string {
	switch {
	case c.Name == "":
		return "Customer name is required"
	case c.Email == "":
		return "Email is required"
	case c.Phone == "":
		return "Phone number is required"
	case c.Address == "":
		return "Delivery address is required"
	case c.City == "":
		return "City is required"
	}
	return ""
}

// CreateOrder records a new order placed at checkout.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("CreateOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	if len(req.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}

	if msg := validateCustomer(req.Customer); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	for _, item := range req.Items {
		if item.Name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Item name is required")
			return
		}
		if item.Quantity < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Item quantity must be at least 1")
			return
		}
		if item.Price < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Item price cannot be negative")
			return
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	// Server-trusted total from the submitted line-item snapshots.
	var totalAmount float64
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := models.Order{
		OrderID:       uuid.NewString(),
		Customer:      req.Customer,
		Items:         req.Items,
		TotalAmount:   totalAmount,
		Status:        models.OrderPending,
		PaymentMethod: paymentMethod,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateOrder InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error placing order")
		return
	}

	go mq.Emit(context.Background(), models.OrderEvent{
		Type:        "order_created",
		OrderID:     order.OrderID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		At:          now,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Order placed successfully!",
		"data": utils.M{
			"orderId":     order.OrderID,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
		},
	})
}

// GetOrders returns all orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := db.OrdersCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(orders),
		"data":    orders,
	})
}

// GetOrder returns a specific order by ID.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("id")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrder FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus moves an order through its lifecycle. The target status
// must belong to the fixed set; delivered and cancelled orders are final.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !models.ValidOrderStatus(payload.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	orderID := ps.ByName("id")

	var current models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&current)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("UpdateOrderStatus FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating order status")
		return
	}

	if models.TerminalOrderStatus(current.Status) {
		utils.RespondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Order is already %s", current.Status))
		return
	}

	now := time.Now()
	var order models.Order
	err = db.OrdersCollection.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": payload.Status, "updatedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		log.Println("UpdateOrderStatus FindOneAndUpdate error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating order status")
		return
	}

	go mq.Emit(context.Background(), models.OrderEvent{
		Type:    "status_changed",
		OrderID: order.OrderID,
		Status:  order.Status,
		At:      now,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": fmt.Sprintf("Order status updated to %s", order.Status),
		"data":    order,
	})
}
