package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"tradehub/db"
	"tradehub/models"
	"tradehub/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func invoiceSecret() []byte {
	if s := os.Getenv("INVOICE_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("trade-hub-invoice-secret")
}

// invoiceQRPayload returns "orderID|totalAmount|signature" so a delivery
// rider can verify the receipt against the order without a lookup.
func invoiceQRPayload(orderID string, total float64) string {
	data := fmt.Sprintf("%s|%.2f", orderID, total)
	h := hmac.New(sha256.New, invoiceSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// OrderInvoice renders a PDF receipt for an order, with a signed QR code.
func OrderInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("id")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching order")
		return
	}

	qrPNG, err := qrcode.Encode(invoiceQRPayload(order.OrderID, order.TotalAmount), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trade Hub Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2 Jan 2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", order.Customer.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Deliver to: %s, %s", order.Customer.Address, order.Customer.City))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Payment: %s", order.PaymentMethod))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, "Item")
	pdf.Cell(20, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Cell(30, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(100, 8, item.Name)
		pdf.Cell(20, 8, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(30, 8, fmt.Sprintf("Rs. %.0f", item.Price))
		pdf.Cell(30, 8, fmt.Sprintf("Rs. %.0f", item.Price*float64(item.Quantity)))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(150, 8, "Total")
	pdf.Cell(30, 8, fmt.Sprintf("Rs. %.0f", order.TotalAmount))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=order-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
