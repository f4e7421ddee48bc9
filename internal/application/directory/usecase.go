package directory

import (
	"context"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
)

// UseCase directorio de empleados: listado saneado de identidades.
// El gate de autorización (view_all_employees) vive en el handler.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso del directorio.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// List devuelve identidades saneadas paginadas, ordenadas por alta.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]entity.SafeUser, error) {
	users, err := uc.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]entity.SafeUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitize())
	}
	return out, nil
}
