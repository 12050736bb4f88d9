// Package pdf implementa el tiquete de báscula imprimible (representación
// gráfica de un pesaje individual) con Maroto v2.
//
// Layout de la página A5:
//
//	┌────────────────────────────────────────────┐
//	│  TIQUETE DE BÁSCULA        N° pesaje        │
//	│  ────────────────────────────────────────  │
//	│  Placa / Proveedor / Fecha / Hora           │
//	│  ────────────────────────────────────────  │
//	│  Bruto | Taras (cant × unit) | Tara total   │
//	│  NETO                                       │
//	│  ────────────────────────────────────────  │
//	│  Operador / Nota                            │
//	└────────────────────────────────────────────┘
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

	appexport "github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const noSupplierDash = "-"

var _ appexport.TicketPDFGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa export.TicketPDFGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el PDF del tiquete y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(_ context.Context, w *entity.Weighing) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tiquete de báscula", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(w))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(identityRows(w)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(weightRows(w)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(w)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha del pesaje (der).
func headerRow(w *entity.Weighing) core.Row {
	created := w.CreatedAt.UTC()
	return row.New(14).Add(
		col.New(7).Add(
			text.New("TIQUETE DE BÁSCULA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(created.Format("2006-01-02"), props.Text{
				Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(created.Format("15:04:05"), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// identityRows: placa y proveedor.
func identityRows(w *entity.Weighing) []core.Row {
	supplier := noSupplierDash
	if w.SupplierName != nil && *w.SupplierName != "" {
		supplier = *w.SupplierName
	}
	return []core.Row{
		labelValueRow("Placa", w.CarNumber),
		labelValueRow("Proveedor", supplier),
	}
}

// weightRows: bruto, tara (cantidad × unitario = total) y neto destacado.
func weightRows(w *entity.Weighing) []core.Row {
	tara := fmt.Sprintf("%d × %s = %s", w.TareCount, w.TareWeight.String(), w.TareTotal.String())
	return []core.Row{
		labelValueRow("Peso bruto", w.GrossWeight.String()),
		labelValueRow("Tara", tara),
		row.New(10).Add(
			col.New(4).Add(
				text.New("PESO NETO", props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
			),
			col.New(8).Add(
				text.New(w.NetWeight.String(), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}),
			),
		),
	}
}

// footerRows: operador y nota si existe.
func footerRows(w *entity.Weighing) []core.Row {
	rows := []core.Row{labelValueRow("Operador", w.CreatedByEmail)}
	if w.Note != nil && *w.Note != "" {
		rows = append(rows, labelValueRow("Nota", *w.Note))
	}
	return rows
}

func labelValueRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(
			text.New(label, props.Text{Size: 9, Color: colorGray, Top: 1}),
		),
		col.New(8).Add(
			text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1}),
		),
	)
}
