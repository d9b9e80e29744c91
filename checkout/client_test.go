package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Customer: models.Customer{
			Name: "Ayesha Khan", Email: "ayesha@example.com", Phone: "0300-1234567",
			Address: "House 12, Street 4", City: "Lahore",
		},
		Items: []models.OrderItem{
			{ProductSlug: "adidas-baseball-cap", Name: "Adidas Cap", Quantity: 2, Price: 999},
		},
		PaymentMethod: models.PaymentCOD,
	}
}

func TestClientPlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		require.Equal(t, 2, req.Items[0].Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Order placed successfully!",
			"data": map[string]interface{}{
				"orderId":     "ord-42",
				"totalAmount": 1998.0,
				"status":      "pending",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	receipt, err := c.PlaceOrder(context.Background(), orderRequest())
	require.NoError(t, err)
	assert.Equal(t, Receipt{OrderID: "ord-42", TotalAmount: 1998, Status: "pending"}, receipt)
}

func TestClientPlaceOrderServerMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Order must contain at least one item",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.PlaceOrder(context.Background(), orderRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Order must contain at least one item")
}

func TestClientPlaceOrderGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.PlaceOrder(context.Background(), orderRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Error placing order. Please try again.")
}

func TestClientListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "Lighting", r.URL.Query().Get("category"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"count":   1,
			"data": []map[string]interface{}{
				{"name": "LED Neon Light Signs", "slug": "led-neon-signs", "price": 6200.0, "category": "Lighting"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	products, err := c.ListProducts(context.Background(), "Lighting")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "led-neon-signs", products[0].Slug)
	assert.Equal(t, 6200.0, products[0].Price)
}

func TestClientGetProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Product not found",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetProduct(context.Background(), "missing")
	assert.EqualError(t, err, "Product not found")
}

func TestClientSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contact", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Delivery query", payload["subject"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Thank you for your message! We will get back to you soon.",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SendMessage(context.Background(), "Ali", "ali@example.com", "Delivery query", "Where is my order?")
	assert.NoError(t, err)
}
