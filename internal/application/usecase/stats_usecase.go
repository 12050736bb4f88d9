package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// Pesajes sin proveedor se consolidan en un bucket fijo.
const unknownSupplierLabel = "—"

// Tamaño máximo del ranking de proveedores.
const topSuppliersLimit = 10

// StatsUseCase calcula el resumen agregado del período: totales, serie diaria
// y top de proveedores. Agrega en memoria sobre decimales exactos, así el
// orden de la suma es irrelevante para el resultado.
type StatsUseCase struct {
	repo repository.WeighingRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.WeighingRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Summary agrega todos los pesajes del rango (sin paginar). Un conjunto vacío
// produce totales en cero y listas vacías, nunca error.
//
//   - Serie diaria: clave por día calendario UTC (YYYY-MM-DD), ascendente;
//     para este formato el orden lexicográfico es el cronológico.
//   - Top proveedores: por neto acumulado descendente, máximo 10; los empates
//     conservan el orden de primera aparición (sort estable, sin reordenar
//     por nombre).
func (uc *StatsUseCase) Summary(ctx context.Context, in dto.StatsRequest) (*dto.StatsSummaryResponse, error) {
	weighings, err := uc.repo.List(ctx, in.Filter(), nil)
	if err != nil {
		return nil, err
	}

	totals := dto.StatsTotals{
		TotalCars:  len(weighings),
		TotalGross: decimal.Zero,
		TotalNet:   decimal.Zero,
	}

	type bucket struct {
		cars int
		net  decimal.Decimal
	}
	byDate := make(map[string]*bucket)
	bySupplier := make(map[string]*bucket)
	var supplierOrder []string // orden de primera aparición, para empates

	for _, w := range weighings {
		totals.TotalGross = totals.TotalGross.Add(w.GrossWeight)
		totals.TotalNet = totals.TotalNet.Add(w.NetWeight)

		day := w.CreatedAt.UTC().Format("2006-01-02")
		db, ok := byDate[day]
		if !ok {
			db = &bucket{net: decimal.Zero}
			byDate[day] = db
		}
		db.cars++
		db.net = db.net.Add(w.NetWeight)

		name := unknownSupplierLabel
		if w.SupplierName != nil && *w.SupplierName != "" {
			name = *w.SupplierName
		}
		sb, ok := bySupplier[name]
		if !ok {
			sb = &bucket{net: decimal.Zero}
			bySupplier[name] = sb
			supplierOrder = append(supplierOrder, name)
		}
		sb.cars++
		sb.net = sb.net.Add(w.NetWeight)
	}

	days := make([]string, 0, len(byDate))
	for d := range byDate {
		days = append(days, d)
	}
	sort.Strings(days)
	daily := make([]dto.DailyPoint, 0, len(days))
	for _, d := range days {
		daily = append(daily, dto.DailyPoint{Date: d, Cars: byDate[d].cars, Net: byDate[d].net})
	}

	top := make([]dto.SupplierRank, 0, len(supplierOrder))
	for _, name := range supplierOrder {
		top = append(top, dto.SupplierRank{SupplierName: name, Cars: bySupplier[name].cars, Net: bySupplier[name].net})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Net.GreaterThan(top[j].Net)
	})
	if len(top) > topSuppliersLimit {
		top = top[:topSuppliersLimit]
	}

	return &dto.StatsSummaryResponse{
		Totals:       totals,
		DailySeries:  daily,
		TopSuppliers: top,
	}, nil
}
