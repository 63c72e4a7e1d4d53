// Package pdf implementa la representación gráfica de las facturas de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + dirección de envío                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: TOTAL A PAGAR                                     │
//	│  FOOTER: leyenda + referencia de orden                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kellyos/kellyos-api/internal/application/sales"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa sales.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ sales.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateInvoicePDF genera el PDF de una factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc *sales.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de Venta "+doc.Number, true).
		WithAuthor(doc.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(doc.Lines) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° Factura + Fecha (der).
func headerRow(doc *sales.InvoiceDocument) core.Row {
	fecha := doc.IssuedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del comprador y dirección de envío.
func customerRow(doc *sales.InvoiceDocument) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.CustomerName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Envío: "+nonEmpty(doc.ShippingAddress, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de la orden. El precio es el snapshot
// al momento de la venta, no el precio vigente del producto.
func tableDetailRows(lines []sales.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de total alineado a la derecha.
func totalsRow(doc *sales.InvoiceDocument) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+doc.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// footerRow: referencia de orden + leyenda.
func footerRow(doc *sales.InvoiceDocument) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Orden de venta: "+doc.OrderID, props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
		text.New("Conserve este documento como soporte de su compra.", props.Text{
			Size: 6.5, Color: colorGray, Top: 6,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
