package repository

import (
	"context"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Create/Update con nombre duplicado retornan domain.ErrDuplicate.
// Delete de un proveedor referenciado por pesajes retorna domain.ErrConflict
// (la FK es RESTRICT: nunca se borran pesajes en cascada).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	ListAll(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
