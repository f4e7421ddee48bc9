package settings

import (
	"context"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/domain/repository"
)

// UseCase preferencias por usuario: lectura con creación perezosa y
// sobrescritura completa.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase construye el caso de uso de settings.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get devuelve las preferencias del usuario, creándolas con defaults si
// es la primera lectura. GETs repetidos devuelven la misma fila.
func (uc *UseCase) Get(ctx context.Context, userID int64) (*entity.UserSettings, error) {
	return uc.repo.GetOrCreate(ctx, userID)
}

// Update sobrescribe la fila completa de preferencias (sin merge parcial)
// y devuelve el estado resultante.
func (uc *UseCase) Update(ctx context.Context, userID int64, in dto.UpdateSettingsRequest) (*entity.UserSettings, error) {
	// Garantiza que la fila exista antes del UPDATE (mismo camino perezoso
	// que el GET: un PUT sin GET previo también debe funcionar).
	if _, err := uc.repo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	s := &entity.UserSettings{
		UserID:             userID,
		EmailNotifications: in.EmailNotifications,
		PushNotifications:  in.PushNotifications,
		LeaveUpdates:       in.LeaveUpdates,
		PayrollAlerts:      in.PayrollAlerts,
		AnnouncementAlerts: in.AnnouncementAlerts,
		Theme:              in.Theme,
		Language:           in.Language,
		TimeFormat:         in.TimeFormat,
		DateFormat:         in.DateFormat,
	}
	return uc.repo.Update(ctx, s)
}
