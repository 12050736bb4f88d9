package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// CreateWeighingRequest entrada para registrar un pesaje. TareTotal y
// NetWeight no se aceptan del cliente: siempre se derivan en el servidor.
type CreateWeighingRequest struct {
	CarNumber   string          `json:"car_number"`
	SupplierID  *string         `json:"supplier_id"`
	GrossWeight decimal.Decimal `json:"gross_weight"`
	TareCount   int             `json:"tare_count"`
	TareWeight  decimal.Decimal `json:"tare_weight"`
	PhotoURL    *string         `json:"photo_url"`
	Note        *string         `json:"note"`
}

// UpdateWeighingRequest actualización parcial: solo los punteros no-nil se
// aplican sobre el registro existente antes de re-derivar los totales.
type UpdateWeighingRequest struct {
	CarNumber   *string          `json:"car_number"`
	SupplierID  *string          `json:"supplier_id"`
	ClearSupplier bool           `json:"clear_supplier"` // true desasocia el proveedor
	GrossWeight *decimal.Decimal `json:"gross_weight"`
	TareCount   *int             `json:"tare_count"`
	TareWeight  *decimal.Decimal `json:"tare_weight"`
	PhotoURL    *string          `json:"photo_url"`
	Note        *string          `json:"note"`
}

// ListWeighingsRequest filtros de listado más paginación. From/To llegan como
// texto del query string; el parseo es tolerante (ver Filter).
type ListWeighingsRequest struct {
	From       string `query:"from"`
	To         string `query:"to"`
	SupplierID string `query:"supplierId"`
	CarNumber  string `query:"carNumber"`
	PageRequest
}

// Filter traduce la petición a un predicado de repositorio. Una fecha que no
// parsea se ignora en silencio en lugar de rechazar la petición: tolerancia
// deliberada con input parcial o corrupto, heredada del comportamiento
// original del sistema (decisión abierta a revisión, no un bug).
func (r ListWeighingsRequest) Filter() repository.WeighingFilter {
	return repository.WeighingFilter{
		From:       parseDate(r.From),
		To:         parseDate(r.To),
		SupplierID: r.SupplierID,
		CarNumber:  r.CarNumber,
	}
}

// parseDate acepta RFC3339 o fecha calendario simple; nil si no parsea.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// WeighingResponse salida de un pesaje con proveedor y operador resueltos.
type WeighingResponse struct {
	ID           string          `json:"id"`
	CarNumber    string          `json:"car_number"`
	SupplierID   *string         `json:"supplier_id"`
	SupplierName *string         `json:"supplier_name"`
	GrossWeight  decimal.Decimal `json:"gross_weight"`
	TareCount    int             `json:"tare_count"`
	TareWeight   decimal.Decimal `json:"tare_weight"`
	TareTotal    decimal.Decimal `json:"tare_total"`
	NetWeight    decimal.Decimal `json:"net_weight"`
	PhotoURL     *string         `json:"photo_url"`
	Note         *string         `json:"note"`
	CreatedByID  string          `json:"created_by_id"`
	OperatorEmail string         `json:"operator_email"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WeighingListResponse lista paginada de pesajes con total sin paginar.
type WeighingListResponse struct {
	Items    []WeighingResponse `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
