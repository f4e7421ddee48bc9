package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/session"
)

// memoryStore implementación en memoria del Store para tests.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]session.Session)}
}

func (m *memoryStore) Save(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = *s
	return nil
}

func (m *memoryStore) Find(_ context.Context, token string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *memoryStore) UpdateSnapshot(_ context.Context, token string, user entity.SafeUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return errors.New("sesión no encontrada")
	}
	s.User = user
	m.sessions[token] = s
	return nil
}

func testUser() entity.SafeUser {
	return entity.SafeUser{
		ID:         1,
		EmployeeID: "EMP001",
		Name:       "Emily Rodriguez",
		Email:      "employee@dayflow.com",
		Role:       entity.RoleEmployee,
		Department: "Marketing",
		Status:     entity.StatusActive,
	}
}

func TestCreateYResolve(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), 30*24*time.Hour)

	s, err := m.Create(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, s.Token)
	assert.Len(t, s.Token, 64, "32 bytes aleatorios en hex")

	got, err := m.Resolve(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "employee@dayflow.com", got.Email)
}

func TestCreate_TokensUnicos(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := m.Create(ctx, testUser())
		require.NoError(t, err)
		require.False(t, seen[s.Token], "token repetido")
		seen[s.Token] = true
	}
}

func TestResolve_TokenDesconocidoOVacio(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), time.Hour)

	_, err := m.Resolve(ctx, "nunca-emitido")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = m.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_SesionExpirada(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	m := session.NewManager(store, time.Millisecond)

	s, err := m.Create(ctx, testUser())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = m.Resolve(ctx, s.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// La sesión expirada se elimina perezosamente del store.
	row, err := store.Find(ctx, s.Token)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestDestroy_Idempotente(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), time.Hour)

	s, err := m.Create(ctx, testUser())
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, s.Token))
	_, err = m.Resolve(ctx, s.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Destruir de nuevo (o un token jamás emitido) sigue sin ser error.
	assert.NoError(t, m.Destroy(ctx, s.Token))
	assert.NoError(t, m.Destroy(ctx, "jamas-emitido"))
	assert.NoError(t, m.Destroy(ctx, ""))
}

func TestRefresh_ActualizaSnapshot(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), time.Hour)

	s, err := m.Create(ctx, testUser())
	require.NoError(t, err)

	updated := testUser()
	updated.Name = "Emily R. García"
	updated.Department = "Sales"
	require.NoError(t, m.Refresh(ctx, s.Token, updated))

	got, err := m.Resolve(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, "Emily R. García", got.Name)
	assert.Equal(t, "Sales", got.Department)
}

// El snapshot resuelto es una copia: mutarlo no toca el store.
func TestResolve_DevuelveCopia(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newMemoryStore(), time.Hour)

	s, err := m.Create(ctx, testUser())
	require.NoError(t, err)

	got, err := m.Resolve(ctx, s.Token)
	require.NoError(t, err)
	got.Name = "Hacked"

	again, err := m.Resolve(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, "Emily Rodriguez", again.Name)
}
