package repository

import (
	"context"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
)

// SettingsRepository puerto de persistencia de preferencias por usuario.
type SettingsRepository interface {
	// GetOrCreate devuelve la fila de settings del usuario, creándola con
	// defaults si no existe. Debe ser exactamente-una-vez incluso con GETs
	// concurrentes (INSERT .. ON CONFLICT DO NOTHING + re-lectura).
	GetOrCreate(ctx context.Context, userID int64) (*entity.UserSettings, error)
	// Update sobrescribe la fila completa (sin merge parcial).
	Update(ctx context.Context, s *entity.UserSettings) (*entity.UserSettings, error)
}
