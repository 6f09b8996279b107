package infra

// pdf.go — invoice PDF generation using go-pdf/fpdf.
// An A5 invoice with the platform header, invoice number, client data,
// order line items and a bold total. The file is written to
// storagePath/factura_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"comidapp/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateFacturaPDF renders the invoice for a Venta whose NumeroFactura has
// already been assigned. The pedido (with items and product names preloaded)
// provides the line detail. Returns the absolute path to the generated file.
func GenerateFacturaPDF(venta *model.Venta, pedido *model.Pedido, storagePath string) (string, error) {
	if venta.NumeroFactura == nil {
		return "", fmt.Errorf("pdf: venta %s sin numero de factura", venta.ID)
	}
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%s.pdf", *venta.NumeroFactura)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "ComidApp", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Factura de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, *venta.NumeroFactura, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, venta.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if venta.Cliente != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Cliente: %s %s", venta.Cliente.Nombre, venta.Cliente.Apellido), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Metodo de pago: "+venta.MetodoPago, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.50
	col2 := contentW * 0.14
	col3 := contentW * 0.36

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	if pedido != nil {
		for _, item := range pedido.Items {
			nombre := ""
			if item.Producto != nil {
				nombre = item.Producto.Nombre
			}
			if len(nombre) > 30 {
				nombre = nombre[:29] + "…"
			}
			pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 6, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "$"+venta.MontoTotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "¡Gracias por su pedido!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
