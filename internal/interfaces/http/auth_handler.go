package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/auth"
	"github.com/dayflow/dayflow-api/internal/application/dto"
	"github.com/dayflow/dayflow-api/internal/domain"
	"github.com/dayflow/dayflow-api/internal/domain/entity"
	"github.com/dayflow/dayflow-api/internal/session"
	"github.com/dayflow/dayflow-api/pkg/config"
)

// AuthHandler maneja signup, signin, me y logout.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *session.Manager
	cookies  config.SessionConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessions *session.Manager, cookies config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookies: cookies}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "employeeId, name, email, password, role, department"
// @Success      201   {object}  entity.SafeUser
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}
	if !in.Complete() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}

	created, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid role"})
		case errors.Is(err, domain.ErrDuplicateUser):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "User with this email or employee ID already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to create user"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Signin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SigninRequest  true  "email, password"
// @Success      200   {object}  entity.SafeUser
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.SigninRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing email or password"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing email or password"})
	}

	user, err := h.uc.Authenticate(c.UserContext(), in.Email, in.Password)
	if err != nil {
		// Email desconocido y password incorrecto comparten mensaje.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Database error"})
	}

	s, err := h.sessions.Create(c.UserContext(), *user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to create session"})
	}
	setSessionCookie(c, h.cookies, s)
	return c.JSON(user)
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  entity.SafeUser
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(CurrentUser(c))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookies.CookieName)
	if err := h.sessions.Destroy(c.UserContext(), token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to logout"})
	}
	clearSessionCookie(c, h.cookies)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// setSessionCookie emite la cookie de sesión: HttpOnly, SameSite=Lax,
// expiración absoluta igual a la de la sesión. Secure según configuración.
func setSessionCookie(c *fiber.Ctx, cfg config.SessionConfig, s *session.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    s.Token,
		Expires:  s.ExpiresAt,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// clearSessionCookie invalida la cookie en el cliente.
func clearSessionCookie(c *fiber.Ctx, cfg config.SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// refreshSession actualiza el snapshot de la sesión activa tras una
// mutación de identidad (perfil, password, switch de rol en dev).
func refreshSession(c *fiber.Ctx, sessions *session.Manager, user *entity.SafeUser) error {
	return sessions.Refresh(c.UserContext(), SessionToken(c), *user)
}
