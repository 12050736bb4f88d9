package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/internal/infrastructure/xlsx"
)

func sampleWeighing(id, car string, supplier *string, createdAt time.Time) *entity.Weighing {
	return &entity.Weighing{
		ID:             id,
		CarNumber:      car,
		SupplierName:   supplier,
		GrossWeight:    decimal.RequireFromString("1250.500"),
		TareCount:      3,
		TareWeight:     decimal.RequireFromString("12.250"),
		TareTotal:      decimal.RequireFromString("36.750"),
		NetWeight:      decimal.RequireFromString("1213.750"),
		CreatedByEmail: "op@planta.local",
		CreatedAt:      createdAt,
	}
}

func TestBuildWeighingList_EncabezadosExactos(t *testing.T) {
	b := xlsx.NewBuilder()

	data, err := b.BuildWeighingList(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{xlsx.SheetName}, f.GetSheetList(), "una sola hoja con el nombre del contrato")

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "sin pesajes solo queda el encabezado")
	assert.Equal(t,
		[]string{"Date", "Car", "Supplier", "Gross", "Tare Count", "Tare Weight", "Tare Total", "Net", "Operator"},
		rows[0])
}

func TestBuildWeighingList_FilasEnOrdenRecibido(t *testing.T) {
	b := xlsx.NewBuilder()
	acme := "Acme"
	created := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	data, err := b.BuildWeighingList([]*entity.Weighing{
		sampleWeighing("w1", "ABC-123", &acme, created),
		sampleWeighing("w2", "XYZ-777", nil, created.Add(time.Hour)),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + una fila por pesaje")

	assert.Equal(t, "2025-03-10", rows[1][0], "fecha en día calendario UTC")
	assert.Equal(t, "ABC-123", rows[1][1])
	assert.Equal(t, "Acme", rows[1][2])
	assert.Equal(t, "op@planta.local", rows[1][8])

	assert.Equal(t, "XYZ-777", rows[2][1], "las filas respetan el orden recibido")
}

func TestBuildWeighingList_SinProveedor_Guion(t *testing.T) {
	b := xlsx.NewBuilder()
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	data, err := b.BuildWeighingList([]*entity.Weighing{
		sampleWeighing("w1", "ABC-123", nil, created),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "-", rows[1][2], "sin proveedor va un guion, nunca celda vacía")
}

func TestBuildWeighingList_PesosComoNumeros(t *testing.T) {
	b := xlsx.NewBuilder()
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	data, err := b.BuildWeighingList([]*entity.Weighing{
		sampleWeighing("w1", "ABC-123", nil, created),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Los pesos se escriben como valores numéricos de la celda
	gross, err := f.GetCellValue(xlsx.SheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "1250.5", gross)

	net, err := f.GetCellValue(xlsx.SheetName, "H2")
	require.NoError(t, err)
	assert.Equal(t, "1213.75", net)

	count, err := f.GetCellValue(xlsx.SheetName, "E2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}
