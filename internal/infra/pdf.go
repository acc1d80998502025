package infra

// pdf.go — purchase order documents rendered with go-pdf/fpdf.
// One A4 page per order: header with order number and supplier, an item
// table (material, quantity, unit price, line total) and a bold grand total.
// The output file is saved to storagePath/order_{number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/go-pdf/fpdf"
)

// GeneratePurchaseOrderPDF renders a purchase order document for a material
// order. storagePath is created if needed. Returns the path of the file.
func GeneratePurchaseOrderPDF(order *model.MaterialOrder, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("order_%s.pdf", order.OrderNumber)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Purchase Order", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Order "+order.OrderNumber, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Supplier: "+order.Supplier, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Order date: "+order.OrderDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Expected delivery: "+order.ExpectedDelivery.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Item table ────────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // material
	col2 := contentW * 0.18 // quantity
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.20 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Quantity", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range order.OrderItems {
		name := ""
		if item.Material != nil {
			name = item.Material.Type + " " + item.Material.Color
			if item.Material.Brand != "" {
				name += " (" + item.Material.Brand + ")"
			}
		}
		if len(name) > 40 {
			name = name[:39] + "…"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.Quantity.StringFixed(2)+" "+string(item.Unit), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, item.TotalPrice.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL ("+order.Currency+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, order.TotalPrice.StringFixed(2), "", 1, "R", false, 0, "")

	if order.Notes != nil && *order.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, "Notes: "+*order.Notes, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
