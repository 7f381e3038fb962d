package infra

// pdf.go — printable exports built with go-pdf/fpdf.
// Two documents come out of here:
//   - the purchase order sheet attached to supplier approval emails
//   - the report summary requested from the reports screen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateOrderPDF writes an A4 purchase order sheet for the supplier.
// storagePath is created if needed. Returns the absolute path of the file.
func GenerateOrderPDF(order *model.PurchaseOrder, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("orden_%s.pdf", order.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Recicladora 4R", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Orden de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Order info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Folio: "+order.Folio, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Fecha: "+order.Date.Format("02/01/2006"), "", 1, "L", false, 0, "")
	if order.Supplier != nil {
		pdf.CellFormat(contentW, 5, "Proveedor: "+order.Supplier.Name, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "RFC: "+order.Supplier.RFC, "", 1, "L", false, 0, "")
	}
	if order.PaymentTerms != "" {
		pdf.CellFormat(contentW, 5, "Condiciones de pago: "+order.PaymentTerms, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Items table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.50 // description
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.18 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Descripción", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "P. Unitario", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range order.Items {
		desc := item.Description
		if len(desc) > 48 {
			desc = desc[:47] + "…"
		}
		pdf.CellFormat(col1, 6, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.Quantity.StringFixed(2), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "$"+order.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if order.Observations != nil && *order.Observations != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, "Observaciones: "+*order.Observations, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// WriteReportPDF writes the report summary as a printable A4 document and
// returns the path of the generated file.
func WriteReportPDF(summary *dto.ReportSummaryResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Recicladora 4R — Reporte", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generado: "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	row3 := func(a, b, c string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(contentW*0.4, 6, a, "B", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.3, 6, b, "B", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.3, 6, c, "B", 1, "R", false, 0, "")
	}

	section("Compras por mes")
	row3("Mes", "Órdenes", "Monto", true)
	for _, r := range summary.MonthlyOrders {
		row3(r.Month, fmt.Sprintf("%d", r.Orders), "$"+r.Amount.StringFixed(2), false)
	}
	pdf.Ln(4)

	section("Movimientos por día")
	row3("Día", "Entradas", "Salidas", true)
	for _, r := range summary.DailyMovements {
		row3(r.Day, fmt.Sprintf("%d", r.Entradas), fmt.Sprintf("%d", r.Salidas), false)
	}
	pdf.Ln(4)

	section("Principales proveedores")
	row3("Proveedor", "Órdenes", "Monto", true)
	for _, r := range summary.SupplierShare {
		name := r.Name
		if len(name) > 36 {
			name = name[:35] + "…"
		}
		row3(name, fmt.Sprintf("%d", r.Orders), "$"+r.Amount.StringFixed(2), false)
	}
	pdf.Ln(4)

	section("Kilos netos por mes")
	row3("Mes", "", "Kilos", true)
	for _, r := range summary.KilosTrend {
		row3(r.Month, "", r.Kilos.StringFixed(2), false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
