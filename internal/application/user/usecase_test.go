package user_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/application/user"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
)

// memoryUserRepo fake mínimo del puerto para este paquete.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[int64]entity.User
}

func newMemoryUserRepo(seed ...entity.User) *memoryUserRepo {
	m := &memoryUserRepo{users: make(map[int64]entity.User)}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *memoryUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := *u
	m.users[out.ID] = out
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

func (m *memoryUserRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

func (m *memoryUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func seedUser(t *testing.T) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret#1"), bcrypt.MinCost)
	require.NoError(t, err)
	return entity.User{
		ID:           7,
		EmployeeID:   "EMP007",
		Name:         "Lisa Wang",
		Email:        "lisa.wang@dayflow.com",
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
		Department:   "Sales",
		Status:       entity.StatusActive,
	}
}

func TestUpdateProfile_SobrescribeCamposMutables(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo(seedUser(t))
	uc := user.NewUseCase(repo)

	updated, err := uc.UpdateProfile(ctx, 7, dto.UpdateProfileRequest{
		Name:       "Lisa W. Chen",
		Phone:      "+57 300 555 0101",
		Department: "Marketing",
		Position:   "Account Manager",
		Bio:        "10 años en ventas",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lisa W. Chen", updated.Name)
	assert.Equal(t, "Marketing", updated.Department)
	// Email y rol quedan intactos por esta vía.
	assert.Equal(t, "lisa.wang@dayflow.com", updated.Email)
	assert.Equal(t, entity.RoleEmployee, updated.Role)
}

func TestUpdateProfile_UsuarioInexistente(t *testing.T) {
	uc := user.NewUseCase(newMemoryUserRepo())

	_, err := uc.UpdateProfile(context.Background(), 99, dto.UpdateProfileRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_ReemplazaElHash(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo(seedUser(t))
	uc := user.NewUseCase(repo)

	_, err := uc.ChangePassword(ctx, 7, "Secret#1", "Nueva#42")
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Nueva#42")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret#1")))
}

// Con el password actual incorrecto el hash almacenado no cambia: el
// password viejo sigue autenticando.
func TestChangePassword_ActualIncorrectoNoMuta(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo(seedUser(t))
	uc := user.NewUseCase(repo)

	_, err := uc.ChangePassword(ctx, 7, "equivocada", "Nueva#42")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	stored, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret#1")),
		"el hash debe seguir correspondiendo al password viejo")
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc := user.NewUseCase(newMemoryUserRepo())

	_, err := uc.ChangePassword(context.Background(), 99, "a", "b")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
