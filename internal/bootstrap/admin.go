// Package bootstrap siembra datos mínimos en el arranque.
package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
	"github.com/dayflow/dayflow-api/pkg/config"
	"github.com/dayflow/dayflow-api/pkg/logger"
)

// EnsureAdmin crea el usuario admin por defecto si su email no existe
// todavía. Idempotente: con el admin ya presente no toca nada.
func EnsureAdmin(ctx context.Context, cfg config.AdminConfig, users repository.UserRepository, log *logger.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("bootstrap admin: email y password requeridos")
	}

	existing, err := users.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("bootstrap buscar admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap hashear password: %w", err)
	}

	admin := &entity.User{
		EmployeeID:   "ADMIN001",
		Name:         "Admin User",
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Department:   "Human Resources",
		Avatar:       entity.DefaultAvatar(entity.RoleAdmin),
		Position:     entity.DefaultPosition(entity.RoleAdmin),
		Status:       entity.StatusActive,
	}
	created, err := users.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("bootstrap crear admin: %w", err)
	}

	log.Info().
		Str("email", created.Email).
		Int64("user_id", created.ID).
		Msg("admin por defecto sembrado")
	return nil
}
