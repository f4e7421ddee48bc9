package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/auth"
	"github.com/dayflow/dayflow-api/internal/application/directory"
	"github.com/dayflow/dayflow-api/internal/application/settings"
	"github.com/dayflow/dayflow-api/internal/application/user"
	"github.com/dayflow/dayflow-api/internal/rbac"
	"github.com/dayflow/dayflow-api/internal/session"
	"github.com/dayflow/dayflow-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *user.UseCase
	SettingsUC  *settings.UseCase
	DirectoryUC *directory.UseCase
	Sessions    *session.Manager
	SessionCfg  config.SessionConfig
	Development bool
}

// Router registra las rutas de la API. Paths y métodos replican la API de
// referencia; todo lo que no sea signup/signin pasa por la sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireSession := SessionMiddleware(deps.Sessions, deps.SessionCfg.CookieName)

	// Auth (signup/signin públicos; me requiere sesión; logout es
	// idempotente y no exige sesión válida)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.SessionCfg)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)
	authGroup.Get("/me", requireSession, authHandler.Me)
	authGroup.Post("/logout", authHandler.Logout)

	// Settings (protegido)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", requireSession, settingsHandler.Get)
	api.Put("/settings", requireSession, settingsHandler.Update)

	// Perfil y password propios (protegido)
	userGroup := api.Group("/user", requireSession)
	userHandler := NewUserHandler(deps.UserUC, deps.Sessions)
	userGroup.Put("/profile", userHandler.UpdateProfile)
	userGroup.Post("/change-password", userHandler.ChangePassword)

	// Directorio de empleados (protegido + RBAC server-side)
	employeeHandler := NewEmployeeHandler(deps.DirectoryUC)
	api.Get("/employees", requireSession, RequirePermission(rbac.PermViewAllEmployees), employeeHandler.List)

	// Atajos de demo, nunca en producción
	if deps.Development {
		devHandler := NewDevHandler(deps.Sessions)
		api.Post("/dev/switch-role", requireSession, devHandler.SwitchRole)
	}
}
