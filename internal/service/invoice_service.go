package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"glowkart/internal/model"

	"github.com/rs/zerolog"
)

// invoiceService renders printable HTML invoices.
type invoiceService struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(logger zerolog.Logger) InvoiceService {
	return &invoiceService{
		tmpl:   template.Must(template.New("invoice").Funcs(invoiceFuncs).Parse(invoiceTemplate)),
		logger: logger.With().Str("service", "invoice").Logger(),
	}
}

var invoiceFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"lineTotal": func(item model.OrderItem) string {
		return fmt.Sprintf("%.2f", float64(item.Quantity)*item.UnitPrice)
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

type invoiceData struct {
	Order   *model.Order
	Address string
}

// Render produces the HTML invoice for an order.
func (s *invoiceService) Render(order *model.Order) ([]byte, error) {
	data := invoiceData{
		Order:   order,
		Address: formatAddress(order.ShippingAddr),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to render invoice")
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	return buf.Bytes(), nil
}

func formatAddress(a model.Address) string {
	if a.Formatted != "" {
		return a.Formatted
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice {{.Order.OrderNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 40px; }
  h1 { font-size: 22px; margin-bottom: 0; }
  .muted { color: #777; font-size: 13px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #ddd; font-size: 14px; }
  th { background: #f5f5f5; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 16px; width: 280px; margin-left: auto; }
  .totals td { border: none; padding: 4px 12px; }
  .totals .grand td { border-top: 2px solid #222; font-weight: bold; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
  <h1>GlowKart</h1>
  <p class="muted">Invoice for order {{.Order.OrderNumber}}<br>
  Placed {{.Order.CreatedAt.Format "2 Jan 2006"}} &middot; Status: {{title .Order.Status}} &middot; Payment: {{title .Order.PaymentStatus}}</p>

  {{if .Address}}<p><strong>Ship to</strong><br>{{.Address}}</p>{{end}}

  <table>
    <thead>
      <tr><th>Item</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Total</th></tr>
    </thead>
    <tbody>
      {{range .Order.Items}}
      <tr>
        <td>{{.ProductName}}{{if .CameraModel}}<br><span class="muted">Camera: {{.CameraModel}}</span>{{end}}{{if .LensModel}}<br><span class="muted">Lens: {{.LensModel}}</span>{{end}}{{if .FlashModel}}<br><span class="muted">Flash: {{.FlashModel}}</span>{{end}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="num">{{money .UnitPrice}}</td>
        <td class="num">{{lineTotal .}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="num">{{money .Order.Subtotal}}</td></tr>
    {{if gt .Order.Discount 0.0}}<tr><td>Discount{{if .Order.CouponCode}} ({{.Order.CouponCode}}){{end}}</td><td class="num">-{{money .Order.Discount}}</td></tr>{{end}}
    <tr><td>Shipping</td><td class="num">{{money .Order.ShippingCost}}</td></tr>
    <tr class="grand"><td>Total</td><td class="num">{{money .Order.Total}}</td></tr>
  </table>

  <p class="muted">Thank you for shopping with GlowKart.</p>
</body>
</html>
`
