// Package weighing contiene las reglas puras del modelo de pesaje: derivación
// de totales y validación de entrada. Sin dependencias de infraestructura.
package weighing

import (
	"net/url"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/bascula-api/internal/domain"
)

// Límites de validación para Weighing.
const (
	CarNumberMaxLen = 50
	NoteMaxLen      = 2000
)

// DeriveTotals calcula los campos derivados de un pesaje:
//
//	tareTotal = tareCount × tareWeight
//	netWeight = grossWeight − tareTotal
//
// Aritmética decimal exacta; el resultado no acumula error de redondeo aunque
// se sume sobre miles de registros. La función es pura y total: el llamador
// debe pasar el conjunto de campos YA fusionado (existentes ∪ parciales);
// recalcular solo desde los campos modificados queda prohibido por diseño.
// NetWeight negativo es válido y se devuelve tal cual.
func DeriveTotals(grossWeight decimal.Decimal, tareCount int, tareWeight decimal.Decimal) (tareTotal, netWeight decimal.Decimal) {
	tareTotal = tareWeight.Mul(decimal.NewFromInt(int64(tareCount)))
	netWeight = grossWeight.Sub(tareTotal)
	return tareTotal, netWeight
}

// Validate verifica los invariantes de entrada de un pesaje fusionado.
// Devuelve *domain.ValidationError con todos los campos ofensores, o nil.
// No valida derivados: esos se recalculan siempre con DeriveTotals.
func Validate(carNumber string, grossWeight decimal.Decimal, tareCount int, tareWeight decimal.Decimal, photoURL, note *string) error {
	var fields []string

	if n := utf8.RuneCountInString(carNumber); n < 1 || n > CarNumberMaxLen {
		fields = append(fields, "carNumber")
	}
	if !grossWeight.IsPositive() {
		fields = append(fields, "grossWeight")
	}
	if tareCount < 0 {
		fields = append(fields, "tareCount")
	}
	if tareWeight.IsNegative() {
		fields = append(fields, "tareWeight")
	}
	if photoURL != nil && *photoURL != "" {
		if u, err := url.Parse(*photoURL); err != nil || u.Scheme == "" || u.Host == "" {
			fields = append(fields, "photoUrl")
		}
	}
	if note != nil && utf8.RuneCountInString(*note) > NoteMaxLen {
		fields = append(fields, "note")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
