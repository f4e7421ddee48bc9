package repository

import (
	"context"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de identidades.
// Los Find* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrDuplicateUser
	// si email o employee_id ya existen (constraint único de la DB).
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmailOrEmployeeID chequeo previo de duplicados en signup.
	ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error)
	// UpdateProfile sobrescribe los campos mutables de perfil
	// (name, phone, department, position, bio). Email y rol no cambian por esta vía.
	UpdateProfile(ctx context.Context, id int64, name, phone, department, position, bio string) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	// List devuelve usuarios ordenados por fecha de alta, con paginación.
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
