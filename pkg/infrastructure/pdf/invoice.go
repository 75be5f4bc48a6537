package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"sales/pkg/domain/model"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 8.0
)

// documentEpoch dates invoices of orders that carry no timestamp, keeping
// the output reproducible.
var documentEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// InvoiceRenderer draws an order onto A4 pages. Rendering the same order
// twice yields identical bytes.
type InvoiceRenderer struct {
	currency string
}

var _ model.InvoiceRenderer = (*InvoiceRenderer)(nil)

func NewInvoiceRenderer(currency string) *InvoiceRenderer {
	return &InvoiceRenderer{currency: currency}
}

func (r *InvoiceRenderer) Render(order model.Order) ([]byte, error) {
	date := documentEpoch
	if order.PlacedAt != nil {
		date = order.PlacedAt.UTC()
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(date)
	doc.SetModificationDate(date)
	doc.SetCatalogSort(true)
	doc.SetTitle("Invoice "+order.DisplayID(), true)
	doc.SetCreator("sales", true)
	doc.SetAutoPageBreak(true, 20)
	doc.AliasNbPages("")

	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(fontFamily, "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont(fontFamily, "B", 20)
	doc.CellFormat(0, 14, tr("Invoice"), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont(fontFamily, "", 12)
	for _, line := range r.headerLines(order) {
		doc.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont(fontFamily, "", 11)
	for _, line := range r.itemLines(order) {
		doc.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont(fontFamily, "B", 13)
	doc.CellFormat(0, lineHeight, tr(r.totalLine(order)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrapf(err, "render invoice %s", order.DisplayID())
	}
	return buf.Bytes(), nil
}

// Lines returns the text of the invoice in drawing order.
func (r *InvoiceRenderer) Lines(order model.Order) []string {
	lines := append([]string{"Invoice"}, r.headerLines(order)...)
	lines = append(lines, r.itemLines(order)...)
	return append(lines, r.totalLine(order))
}

func (r *InvoiceRenderer) headerLines(order model.Order) []string {
	return []string{
		"Order ID: " + order.DisplayID(),
		"Customer: " + order.Username,
		"Date: " + order.DisplayTimestamp(),
	}
}

func (r *InvoiceRenderer) itemLines(order model.Order) []string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s ×%d — %s", item.Name, item.Quantity, r.amount(item.Subtotal())))
	}
	return lines
}

func (r *InvoiceRenderer) totalLine(order model.Order) string {
	return "Total: " + r.amount(order.Total)
}

func (r *InvoiceRenderer) amount(value int64) string {
	if r.currency == "" {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("%s %d", r.currency, value)
}
