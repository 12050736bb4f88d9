package repository

import (
	"context"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El core solo lee usuarios; el alta la hace la herramienta de seed.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
