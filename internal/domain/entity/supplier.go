package entity

import "time"

// Supplier representa un proveedor que entrega material en la báscula.
// El nombre es único (constraint en la DB, sensible a mayúsculas).
type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
