package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/dayflow-api/internal/application/auth"
	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
)

// memoryUserRepo implementación en memoria del puerto para tests.
type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: make(map[int64]entity.User)}
}

func (m *memoryUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email || u.EmployeeID == user.EmployeeID {
			return nil, domain.ErrDuplicateUser
		}
	}
	u := *user
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	out := u
	return &out, nil
}

func (m *memoryUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (m *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) ExistsByEmailOrEmployeeID(_ context.Context, email, employeeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUserRepo) UpdateProfile(_ context.Context, id int64, name, phone, department, position, bio string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	u.Name, u.Phone, u.Department, u.Position, u.Bio = name, phone, department, position, bio
	m.users[id] = u
	out := u
	return &out, nil
}

func (m *memoryUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	m.users[id] = u
	return nil
}

func (m *memoryUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*entity.User
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			out := u
			list = append(list, &out)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func signupAnn() dto.SignupRequest {
	return dto.SignupRequest{
		EmployeeID: "EMP100",
		Name:       "Ann Lee",
		Email:      "ann@x.com",
		Password:   "Secret#1",
		Role:       entity.RoleEmployee,
		Department: "Sales",
	}
}

func TestRegister_CreaIdentidadSaneada(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo()
	uc := auth.NewUseCase(repo)

	created, err := uc.Register(ctx, signupAnn())
	require.NoError(t, err)

	assert.Equal(t, "EMP100", created.EmployeeID)
	assert.Equal(t, "ann@x.com", created.Email)
	assert.Equal(t, entity.RoleEmployee, created.Role)
	assert.Equal(t, entity.StatusActive, created.Status)
	assert.Equal(t, entity.DefaultAvatar(entity.RoleEmployee), created.Avatar)
	assert.Equal(t, "Employee", created.Position)

	// Lo almacenado es un hash bcrypt, nunca el password en claro.
	stored, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Secret#1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret#1")))
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := auth.NewUseCase(newMemoryUserRepo())

	in := signupAnn()
	in.Role = "superadmin"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_DuplicadosDevuelvenConflict(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo()
	uc := auth.NewUseCase(repo)

	_, err := uc.Register(ctx, signupAnn())
	require.NoError(t, err)

	// Mismo email, otro employee ID.
	dup := signupAnn()
	dup.EmployeeID = "EMP101"
	_, err = uc.Register(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	// Mismo employee ID, otro email.
	dup = signupAnn()
	dup.Email = "otra@x.com"
	_, err = uc.Register(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	// El conflicto no mutó lo almacenado: el signin original sigue vivo.
	got, err := uc.Authenticate(ctx, "ann@x.com", "Secret#1")
	require.NoError(t, err)
	assert.Equal(t, "EMP100", got.EmployeeID)
}

func TestAuthenticate_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewUseCase(newMemoryUserRepo())

	_, err := uc.Register(ctx, signupAnn())
	require.NoError(t, err)

	got, err := uc.Authenticate(ctx, "ann@x.com", "Secret#1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, got.Role)
	assert.Equal(t, "Ann Lee", got.Name)

	_, err = uc.Authenticate(ctx, "ann@x.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Email desconocido y password incorrecto deben ser indistinguibles para
// el caller (resistencia a enumeración de usuarios).
func TestAuthenticate_ErrorIdenticoParaEmailYPassword(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewUseCase(newMemoryUserRepo())

	_, err := uc.Register(ctx, signupAnn())
	require.NoError(t, err)

	_, errUnknownEmail := uc.Authenticate(ctx, "nadie@x.com", "Secret#1")
	_, errWrongPassword := uc.Authenticate(ctx, "ann@x.com", "incorrecta")

	require.Error(t, errUnknownEmail)
	require.Error(t, errWrongPassword)
	assert.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknownEmail.Error(), errWrongPassword.Error())
}
