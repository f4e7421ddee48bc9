// Package session gestiona sesiones opacas: un token aleatorio que el
// cliente presenta en una cookie y que el servidor resuelve a un snapshot
// saneado de identidad. El snapshot es una copia: cambios posteriores en la
// identidad no se reflejan salvo por Refresh explícito.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
)

// tokenBytes bytes aleatorios por token; hex los duplica a 64 caracteres.
const tokenBytes = 32

// Session sesión emitida: token opaco + snapshot de identidad + expiración
// absoluta fija (sin renovación deslizante).
type Session struct {
	Token     string
	User      entity.SafeUser
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya pasó su expiración absoluta.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store puerto de persistencia de sesiones (server-side).
// Find devuelve (nil, nil) si el token no existe.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Find(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	UpdateSnapshot(ctx context.Context, token string, user entity.SafeUser) error
}

// Manager emite, resuelve y destruye sesiones sobre un Store.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewManager construye el manager con el TTL absoluto de las sesiones.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Create emite una sesión nueva para una identidad ya autenticada.
// El token es criptográficamente aleatorio, nunca secuencial.
func (m *Manager) Create(ctx context.Context, user entity.SafeUser) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generar token de sesión: %w", err)
	}
	now := m.now()
	s := &Session{
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return s, nil
}

// Resolve devuelve el snapshot de identidad del token, o
// domain.ErrUnauthenticated si el token está vacío, no existe o expiró.
// Las sesiones expiradas se eliminan perezosamente al encontrarlas.
func (m *Manager) Resolve(ctx context.Context, token string) (*entity.SafeUser, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	s, err := m.store.Find(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("buscar sesión: %w", err)
	}
	if s == nil {
		return nil, domain.ErrUnauthenticated
	}
	if s.Expired(m.now()) {
		_ = m.store.Delete(ctx, token)
		return nil, domain.ErrUnauthenticated
	}
	user := s.User
	return &user, nil
}

// Destroy elimina la sesión. Idempotente: destruir un token inexistente
// no es error para el caller.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}

// Refresh reemplaza el snapshot de identidad de una sesión activa. Se
// invoca tras actualizar perfil o cambiar password para que la sesión
// refleje el estado nuevo sin re-autenticación.
func (m *Manager) Refresh(ctx context.Context, token string, user entity.SafeUser) error {
	if err := m.store.UpdateSnapshot(ctx, token, user); err != nil {
		return fmt.Errorf("refrescar snapshot de sesión: %w", err)
	}
	return nil
}

// newToken genera el token opaco: tokenBytes de crypto/rand en hex.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
