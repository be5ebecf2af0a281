package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/pos"
)

// The engine only returns structured order data; turning it into a
// printable document is this layer's job.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Receipt</title>
  <style>
    body { font-family: 'Segoe UI', Arial, sans-serif; background: #f8f8f8; margin: 0; padding: 40px; }
    .receipt { max-width: 400px; margin: auto; background: #fff; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); padding: 24px; }
    .store { font-size: 1.4em; font-weight: bold; text-align: center; margin-bottom: 8px; }
    .date { text-align: center; color: #888; margin-bottom: 16px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
    th, td { padding: 6px 0; text-align: left; }
    th { border-bottom: 1px solid #eee; font-weight: 600; }
    td.num, th.num { text-align: right; }
    .totals td { font-weight: 600; }
    .thankyou { text-align: center; margin-top: 18px; font-size: 1.1em; color: #4caf50; }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="store">Mini POS Store</div>
    <div class="date">{{.CreatedAt.Format "2 Jan 2006 15:04"}}</div>
    <table>
      <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Subtotal</th></tr>
      {{range .Items}}<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">PKR {{.UnitPrice}}</td><td class="num">PKR {{.LineSubtotal}}</td></tr>
      {{end}}
    </table>
    <table class="totals">
      <tr><td>Subtotal</td><td class="num">PKR {{.Subtotal}}</td></tr>
      <tr><td>Tax (10%)</td><td class="num">PKR {{.Tax}}</td></tr>
      <tr><td>Grand Total</td><td class="num">PKR {{.GrandTotal}}</td></tr>
    </table>
    <div class="thankyou">Thank you for your purchase!</div>
  </div>
</body>
</html>
`))

// GetReceipt is the handler for GET /v1/orders/:id/receipt. It renders a
// committed order as a printable HTML document.
func (h *Handlers) GetReceipt(c *gin.Context) {
	userID := currentUserID(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.Order(c.Request.Context(), userID, orderID)
	if errors.Is(err, pos.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("fetch order failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := receiptTmpl.Execute(c.Writer, order); err != nil {
		h.Log.WithError(err).Error("render receipt failed")
	}
}
