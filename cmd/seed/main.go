// seed crea (o actualiza) el usuario administrador inicial en la base de datos.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que la API.
// ADMIN_EMAIL y ADMIN_PASSWORD sobreescriben las credenciales por defecto.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/internal/infrastructure/postgres"
	"github.com/jcamargo/bascula-api/pkg/config"
)

const (
	defaultAdminEmail    = "admin@local"
	defaultAdminPassword = "Admin123!"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)

	// Upsert por email: si ya existe, solo actualizamos hash y rol.
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		_, err = pool.Exec(ctx,
			`UPDATE users SET password_hash = $1, role = $2, updated_at = now() WHERE id = $3`,
			string(hash), entity.RoleAdmin, existing.ID,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Actualizar usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario admin actualizado: %s (%s)\n", email, existing.ID)
		return
	}

	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, u); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario admin creado: %s (%s)\n", email, u.ID)
}
