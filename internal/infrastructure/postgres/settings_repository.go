package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

const settingsColumns = `id, user_id, email_notifications, push_notifications, leave_updates,
	payroll_alerts, announcement_alerts, theme, language, time_format, date_format, updated_at`

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de persistencia de settings.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// GetOrCreate devuelve la fila de settings del usuario, creándola con los
// defaults del esquema si no existe. ON CONFLICT DO NOTHING + re-lectura
// garantiza exactamente una fila aunque dos GETs lleguen a la vez.
func (r *SettingsRepo) GetOrCreate(ctx context.Context, userID int64) (*entity.UserSettings, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert default settings: %w", err)
	}

	query := `SELECT ` + settingsColumns + ` FROM user_settings WHERE user_id = $1`
	s, err := scanSettings(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Update sobrescribe la fila completa de settings del usuario y devuelve
// el estado resultante.
func (r *SettingsRepo) Update(ctx context.Context, in *entity.UserSettings) (*entity.UserSettings, error) {
	query := `
		UPDATE user_settings
		SET email_notifications = $2,
			push_notifications = $3,
			leave_updates = $4,
			payroll_alerts = $5,
			announcement_alerts = $6,
			theme = $7,
			language = $8,
			time_format = $9,
			date_format = $10,
			updated_at = now()
		WHERE user_id = $1
		RETURNING ` + settingsColumns
	s, err := scanSettings(r.pool.QueryRow(ctx, query,
		in.UserID, in.EmailNotifications, in.PushNotifications, in.LeaveUpdates,
		in.PayrollAlerts, in.AnnouncementAlerts, in.Theme, in.Language,
		in.TimeFormat, in.DateFormat,
	))
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s, nil
}

// scanSettings lee una fila de user_settings en la entidad.
func scanSettings(row pgx.Row) (*entity.UserSettings, error) {
	var s entity.UserSettings
	err := row.Scan(
		&s.ID, &s.UserID, &s.EmailNotifications, &s.PushNotifications, &s.LeaveUpdates,
		&s.PayrollAlerts, &s.AnnouncementAlerts, &s.Theme, &s.Language,
		&s.TimeFormat, &s.DateFormat, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
