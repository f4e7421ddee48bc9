package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
)

// UseCase casos de uso de autenticación: registro y verificación de credenciales.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Register crea una identidad: valida rol, chequea duplicados, hashea el
// password con bcrypt y persiste. Nunca almacena ni devuelve el password
// en claro. Devuelve domain.ErrDuplicateUser si email o employee ID ya
// existen (el constraint único de la DB cubre la carrera entre el chequeo
// previo y el INSERT).
func (uc *UseCase) Register(ctx context.Context, in dto.SignupRequest) (*entity.SafeUser, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	exists, err := uc.users.ExistsByEmailOrEmployeeID(ctx, in.Email, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("chequear duplicados: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	avatar := in.Avatar
	if avatar == "" {
		avatar = entity.DefaultAvatar(in.Role)
	}

	user := &entity.User{
		EmployeeID:   in.EmployeeID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Department:   in.Department,
		Avatar:       avatar,
		Position:     entity.DefaultPosition(in.Role),
		Status:       entity.StatusActive,
	}
	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	safe := created.Sanitize()
	return &safe, nil
}

// Authenticate verifica email y password. Email desconocido y password
// incorrecto devuelven el mismo ErrInvalidCredentials: el caller no debe
// poder distinguir cuál de los dos chequeos falló (resistencia a
// enumeración de usuarios).
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) (*entity.SafeUser, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	safe := user.Sanitize()
	return &safe, nil
}
