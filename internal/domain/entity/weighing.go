package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Weighing representa un pesaje de vehículo en la portería de la planta.
// TareTotal y NetWeight son derivados: TareTotal = TareCount × TareWeight,
// NetWeight = GrossWeight − TareTotal. Se recalculan en cada create/update
// a partir del conjunto de campos ya fusionado; nunca se aceptan del cliente.
// NetWeight puede ser negativo (tara mayor que bruto); se preserva exacto.
type Weighing struct {
	ID          string
	CarNumber   string          // placa, texto libre 1–50
	SupplierID  *string         // opcional
	GrossWeight decimal.Decimal // > 0
	TareCount   int             // >= 0, cantidad de contenedores de tara
	TareWeight  decimal.Decimal // >= 0, peso unitario de tara
	TareTotal   decimal.Decimal // derivado
	NetWeight   decimal.Decimal // derivado
	PhotoURL    *string
	Note        *string
	CreatedByID string // inmutable tras la creación
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Resueltos por el store vía JOIN (no se persisten en weighings).
	SupplierName   *string
	CreatedByEmail string
}
