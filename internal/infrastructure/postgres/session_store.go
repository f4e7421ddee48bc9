package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/session"
)

var _ session.Store = (*SessionStore)(nil)

// SessionStore persistencia server-side de sesiones. El snapshot de
// identidad va como JSONB: el cliente solo ve el token opaco y no puede
// forjar ni alterar la identidad embebida.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore construye el adaptador de persistencia de sesiones.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// Save inserta la sesión recién emitida.
func (r *SessionStore) Save(ctx context.Context, s *session.Session) error {
	snapshot, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO sessions (token, user_snapshot, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		s.Token, snapshot, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Find busca la sesión por token. (nil, nil) si no existe; la expiración
// la decide el Manager, no el store.
func (r *SessionStore) Find(ctx context.Context, token string) (*session.Session, error) {
	var (
		s        session.Session
		snapshot []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT token, user_snapshot, created_at, expires_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&s.Token, &snapshot, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var user entity.SafeUser
	if err := json.Unmarshal(snapshot, &user); err != nil {
		return nil, fmt.Errorf("deserializar snapshot: %w", err)
	}
	s.User = user
	return &s, nil
}

// Delete elimina la sesión; borrar un token inexistente no es error.
func (r *SessionStore) Delete(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateSnapshot reemplaza el snapshot de identidad de una sesión activa.
func (r *SessionStore) UpdateSnapshot(ctx context.Context, token string, user entity.SafeUser) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE sessions SET user_snapshot = $2 WHERE token = $1`,
		token, snapshot,
	)
	if err != nil {
		return fmt.Errorf("update session snapshot: %w", err)
	}
	return nil
}
