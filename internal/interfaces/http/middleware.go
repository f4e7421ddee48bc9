package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/rbac"
	"github.com/dayflow/dayflow-api/internal/session"
)

// Locals keys para la identidad resuelta y el token de sesión en Fiber.
const (
	LocalUser         = "session_user"
	LocalSessionToken = "session_token"
)

// SessionMiddleware lee la cookie de sesión, resuelve el token contra el
// store server-side y deja el snapshot saneado en c.Locals. Default-deny:
// sin token válido responde 401 con el mensaje genérico de la referencia.
func SessionMiddleware(sessions *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		user, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Not authenticated"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Database error"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

// RequirePermission autoriza contra la tabla estática de RBAC. Debe ir
// después de SessionMiddleware. Rol sin el permiso → 403.
func RequirePermission(perm rbac.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Not authenticated"})
		}
		if !rbac.HasPermission(user.Role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Forbidden"})
		}
		return c.Next()
	}
}

// RequestLogger registra cada request con un id propio, método, ruta,
// status y duración.
func RequestLogger(zl zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		zl.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// CurrentUser devuelve el snapshot de identidad dejado por SessionMiddleware.
func CurrentUser(c *fiber.Ctx) *entity.SafeUser {
	u, _ := c.Locals(LocalUser).(*entity.SafeUser)
	return u
}

// SessionToken devuelve el token de la sesión actual.
func SessionToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionToken).(string)
	return s
}
