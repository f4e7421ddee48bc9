package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/session"
)

// DevHandler atajos de demo. Solo se registra con APP_ENV=development:
// el switch de rol salta el trust boundary del modelo de autorización y
// no tiene lugar en producción.
type DevHandler struct {
	sessions *session.Manager
}

// NewDevHandler construye el handler de rutas de desarrollo.
func NewDevHandler(sessions *session.Manager) *DevHandler {
	return &DevHandler{sessions: sessions}
}

// SwitchRole cambia el rol activo del snapshot de la sesión actual. No
// toca la identidad persistida: al re-autenticarse vuelve el rol real.
func (h *DevHandler) SwitchRole(c *fiber.Ctx) error {
	var in dto.SwitchRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}
	if !entity.ValidRole(in.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid role"})
	}

	user := *CurrentUser(c)
	user.Role = in.Role
	if user.Avatar == "" {
		user.Avatar = entity.DefaultAvatar(in.Role)
	}
	user.Position = entity.DefaultPosition(in.Role)

	if err := refreshSession(c, h.sessions, &user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to switch role"})
	}
	return c.JSON(user)
}
