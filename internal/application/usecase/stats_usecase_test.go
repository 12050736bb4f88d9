package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// seedStatsWeighing inserta un pesaje con neto y proveedor controlados.
func seedStatsWeighing(t *testing.T, repo *fakeWeighingRepo, id string, net decimal.Decimal, supplierID *string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &entity.Weighing{
		ID:          id,
		CarNumber:   "CAR-" + id,
		SupplierID:  supplierID,
		GrossWeight: net, // bruto = neto para simplificar (tara cero)
		TareTotal:   decimal.Zero,
		NetWeight:   net,
		CreatedByID: "op-1",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	require.NoError(t, err)
}

func TestStatsSummary_SinDatos_CerosYListasVacias(t *testing.T) {
	uc := usecase.NewStatsUseCase(newFakeWeighingRepo())

	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Totals.TotalCars)
	assert.True(t, decimal.Zero.Equal(resp.Totals.TotalGross))
	assert.True(t, decimal.Zero.Equal(resp.Totals.TotalNet))
	assert.Empty(t, resp.DailySeries)
	assert.Empty(t, resp.TopSuppliers)
}

func TestStatsSummary_SerieDiariaUTCAscendente(t *testing.T) {
	repo := newFakeWeighingRepo()
	// 23:30 UTC del día 10 y 00:30 UTC del día 11: días calendario distintos
	seedStatsWeighing(t, repo, "w1", decimal.NewFromInt(100), nil, time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC))
	seedStatsWeighing(t, repo, "w2", decimal.NewFromInt(50), nil, time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC))
	seedStatsWeighing(t, repo, "w3", decimal.NewFromInt(25), nil, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.DailySeries, 2)
	assert.Equal(t, "2025-03-10", resp.DailySeries[0].Date, "serie ascendente por día")
	assert.Equal(t, 2, resp.DailySeries[0].Cars)
	assert.True(t, decimal.NewFromInt(75).Equal(resp.DailySeries[0].Net))
	assert.Equal(t, "2025-03-11", resp.DailySeries[1].Date)
	assert.Equal(t, 1, resp.DailySeries[1].Cars)

	assert.Equal(t, 3, resp.Totals.TotalCars)
	assert.True(t, decimal.NewFromInt(175).Equal(resp.Totals.TotalNet))
}

func TestStatsSummary_TopProveedoresPorNetoDescendente(t *testing.T) {
	repo := newFakeWeighingRepo()
	repo.supplierNames["s1"] = "Alfa"
	repo.supplierNames["s2"] = "Beta"
	repo.supplierNames["s3"] = "Gamma"

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s1, s2, s3 := "s1", "s2", "s3"
	seedStatsWeighing(t, repo, "w1", decimal.NewFromInt(50), &s1, base)
	seedStatsWeighing(t, repo, "w2", decimal.NewFromInt(80), &s2, base.Add(time.Minute))
	seedStatsWeighing(t, repo, "w3", decimal.NewFromInt(30), &s3, base.Add(2*time.Minute))

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.TopSuppliers, 3)
	assert.Equal(t, "Beta", resp.TopSuppliers[0].SupplierName)
	assert.True(t, decimal.NewFromInt(80).Equal(resp.TopSuppliers[0].Net))
	assert.Equal(t, "Alfa", resp.TopSuppliers[1].SupplierName)
	assert.Equal(t, "Gamma", resp.TopSuppliers[2].SupplierName)
}

func TestStatsSummary_TopProveedoresMaximoDiez(t *testing.T) {
	repo := newFakeWeighingRepo()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("s%02d", i)
		repo.supplierNames[id] = "Proveedor " + id
		sid := id
		seedStatsWeighing(t, repo, "w"+id, decimal.NewFromInt(int64(100+i)), &sid, base.Add(time.Duration(i)*time.Minute))
	}

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.TopSuppliers, 10, "el ranking se corta en 10")
	assert.Equal(t, "Proveedor s11", resp.TopSuppliers[0].SupplierName, "el de mayor neto encabeza")
}

func TestStatsSummary_PesajeSinProveedor_BucketDesconocido(t *testing.T) {
	repo := newFakeWeighingRepo()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seedStatsWeighing(t, repo, "w1", decimal.NewFromInt(40), nil, base)
	seedStatsWeighing(t, repo, "w2", decimal.NewFromInt(60), nil, base.Add(time.Minute))

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.TopSuppliers, 1)
	assert.Equal(t, "—", resp.TopSuppliers[0].SupplierName, "sin proveedor consolida en un solo bucket")
	assert.Equal(t, 2, resp.TopSuppliers[0].Cars)
	assert.True(t, decimal.NewFromInt(100).Equal(resp.TopSuppliers[0].Net))
}

func TestStatsSummary_EmpatesConservanOrdenDeAparicion(t *testing.T) {
	repo := newFakeWeighingRepo()
	repo.supplierNames["s1"] = "Zeta"
	repo.supplierNames["s2"] = "Alfa"

	// Mismo neto para ambos; Zeta aparece primero en el listado (más reciente,
	// porque el fake ordena created_at descendente)
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s1, s2 := "s1", "s2"
	seedStatsWeighing(t, repo, "w1", decimal.NewFromInt(50), &s2, base)
	seedStatsWeighing(t, repo, "w2", decimal.NewFromInt(50), &s1, base.Add(time.Hour))

	uc := usecase.NewStatsUseCase(repo)
	resp, err := uc.Summary(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.TopSuppliers, 2)
	assert.Equal(t, "Zeta", resp.TopSuppliers[0].SupplierName,
		"con empate, gana el orden de primera aparición; no se reordena por nombre")
	assert.Equal(t, "Alfa", resp.TopSuppliers[1].SupplierName)
}
