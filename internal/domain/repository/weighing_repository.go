package repository

import (
	"context"
	"time"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// WeighingFilter describe el predicado de búsqueda de pesajes. Solo los campos
// presentes añaden cláusulas: un filtro ausente no restringe nada. Las fechas
// son punteros porque "sin límite" y "límite en cero" son cosas distintas.
type WeighingFilter struct {
	From       *time.Time // inclusivo, sobre created_at
	To         *time.Time // inclusivo
	SupplierID string     // igualdad exacta
	CarNumber  string     // substring, insensible a mayúsculas
}

// Page ventana de paginación ya resuelta (limit/offset). nil = sin paginar.
type Page struct {
	Limit  int
	Offset int
}

// WeighingRepository define el puerto de persistencia para Weighing (DIP).
// List devuelve siempre ordenado por created_at descendente, con proveedor y
// operador ya resueltos. Update/Delete sobre un ID inexistente (o borrado de
// forma concurrente) retornan domain.ErrNotFound, nunca éxito silencioso.
type WeighingRepository interface {
	Create(ctx context.Context, w *entity.Weighing) error
	GetByID(ctx context.Context, id string) (*entity.Weighing, error)
	List(ctx context.Context, f WeighingFilter, p *Page) ([]*entity.Weighing, error)
	Count(ctx context.Context, f WeighingFilter) (int, error)
	Update(ctx context.Context, w *entity.Weighing) error
	Delete(ctx context.Context, id string) error
}
