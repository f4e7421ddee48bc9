package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
)

// UseCase operaciones sobre la identidad propia: perfil y password.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de usuario.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// UpdateProfile sobrescribe los campos mutables del perfil y devuelve la
// identidad fresca. Email y rol son inmutables por esta vía.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) (*entity.SafeUser, error) {
	updated, err := uc.users.UpdateProfile(ctx, userID, in.Name, in.Phone, in.Department, in.Position, in.Bio)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserNotFound
	}
	safe := updated.Sanitize()
	return &safe, nil
}

// ChangePassword verifica el password actual contra el hash almacenado y,
// solo si coincide, re-hashea y guarda el nuevo. Con password actual
// incorrecto el hash almacenado queda intacto.
func (uc *UseCase) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (*entity.SafeUser, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	if err := uc.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return nil, err
	}
	safe := user.Sanitize()
	return &safe, nil
}
