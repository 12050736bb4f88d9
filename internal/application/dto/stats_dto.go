package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// StatsRequest rango de fechas opcional para el resumen (mismo parseo
// tolerante que el listado de pesajes).
type StatsRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// Filter traduce la petición a un predicado de repositorio (solo fechas).
func (r StatsRequest) Filter() repository.WeighingFilter {
	return repository.WeighingFilter{
		From: parseDate(r.From),
		To:   parseDate(r.To),
	}
}

// StatsTotals totales del período.
type StatsTotals struct {
	TotalCars  int             `json:"total_cars"`
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalNet   decimal.Decimal `json:"total_net"`
}

// DailyPoint un día calendario (UTC, YYYY-MM-DD) de la serie.
type DailyPoint struct {
	Date string          `json:"date"`
	Cars int             `json:"cars"`
	Net  decimal.Decimal `json:"net"`
}

// SupplierRank un proveedor del top por neto acumulado.
type SupplierRank struct {
	SupplierName string          `json:"supplier_name"`
	Cars         int             `json:"cars"`
	Net          decimal.Decimal `json:"net"`
}

// StatsSummaryResponse resumen agregado del período.
type StatsSummaryResponse struct {
	Totals       StatsTotals    `json:"totals"`
	DailySeries  []DailyPoint   `json:"daily_series"`
	TopSuppliers []SupplierRank `json:"top_suppliers"`
}
