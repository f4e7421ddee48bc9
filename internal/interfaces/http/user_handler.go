package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/application/user"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/session"
)

// UserHandler operaciones sobre la identidad propia (perfil y password).
type UserHandler struct {
	uc       *user.UseCase
	sessions *session.Manager
}

// NewUserHandler construye el handler de usuario.
func NewUserHandler(uc *user.UseCase, sessions *session.Manager) *UserHandler {
	return &UserHandler{uc: uc, sessions: sessions}
}

// UpdateProfile godoc
// @Summary      Actualizar perfil propio
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "name, phone, department, position, bio"
// @Success      200   {object}  entity.SafeUser
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}

	current := CurrentUser(c)
	updated, err := h.uc.UpdateProfile(c.UserContext(), current.ID, in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update profile"})
	}

	// La sesión activa refleja el perfil nuevo sin re-autenticación.
	if err := refreshSession(c, h.sessions, updated); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update profile"})
	}
	return c.JSON(updated)
}

// ChangePassword godoc
// @Summary      Cambiar password verificando el actual
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/change-password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Both current and new password are required"})
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Both current and new password are required"})
	}

	current := CurrentUser(c)
	fresh, err := h.uc.ChangePassword(c.UserContext(), current.ID, in.CurrentPassword, in.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Current password is incorrect"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update password"})
	}

	if err := refreshSession(c, h.sessions, fresh); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update password"})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Password updated successfully"})
}
