package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/application/settings"
)

// SettingsHandler preferencias por usuario.
type SettingsHandler struct {
	uc *settings.UseCase
}

// NewSettingsHandler construye el handler de settings.
func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Preferencias del usuario (creación perezosa con defaults)
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.UserSettings
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	user := CurrentUser(c)
	s, err := h.uc.Get(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to load settings"})
	}
	return c.JSON(s)
}

// Update godoc
// @Summary      Sobrescribir preferencias del usuario
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "preferencias completas"
// @Success      200   {object}  entity.UserSettings
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}

	user := CurrentUser(c)
	s, err := h.uc.Update(c.UserContext(), user.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update settings"})
	}
	return c.JSON(s)
}
