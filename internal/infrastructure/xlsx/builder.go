// Package xlsx construye el libro de exportación de pesajes.
// El orden de columnas y los encabezados son parte del contrato con los
// consumidores del archivo: no cambiarlos sin coordinar.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appexport "github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// SheetName hoja única del libro.
const SheetName = "Weighings"

// Placeholder cuando el pesaje no tiene proveedor.
const noSupplierDash = "-"

// Encabezados en el orden exacto del contrato.
var headers = []struct {
	title string
	width float64
}{
	{"Date", 12},
	{"Car", 15},
	{"Supplier", 20},
	{"Gross", 10},
	{"Tare Count", 10},
	{"Tare Weight", 12},
	{"Tare Total", 12},
	{"Net", 10},
	{"Operator", 20},
}

var _ appexport.SpreadsheetBuilder = (*Builder)(nil)

// Builder implementa export.SpreadsheetBuilder usando excelize.
type Builder struct{}

// NewBuilder construye el generador.
func NewBuilder() *Builder { return &Builder{} }

// BuildWeighingList produce el xlsx: una fila de encabezado más una fila por
// pesaje, en el orden recibido. Los pesos van como números nativos de la
// celda (nunca strings formateados); la fecha es el día de creación UTC.
func (b *Builder) BuildWeighingList(weighings []*entity.Weighing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: columna %d: %w", i+1, err)
		}
		if err := f.SetCellValue(SheetName, col+"1", h.title); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %q: %w", h.title, err)
		}
		if err := f.SetColWidth(SheetName, col, col, h.width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de %s: %w", col, err)
		}
	}

	for i, w := range weighings {
		supplier := noSupplierDash
		if w.SupplierName != nil && *w.SupplierName != "" {
			supplier = *w.SupplierName
		}
		cells := []interface{}{
			w.CreatedAt.UTC().Format("2006-01-02"),
			w.CarNumber,
			supplier,
			w.GrossWeight.InexactFloat64(),
			w.TareCount,
			w.TareWeight.InexactFloat64(),
			w.TareTotal.InexactFloat64(),
			w.NetWeight.InexactFloat64(),
			w.CreatedByEmail,
		}
		row := i + 2 // fila 1 es el encabezado
		for j, v := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda (%d,%d): %w", j+1, row, err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: escribir %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
