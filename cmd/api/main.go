package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dayflow/dayflow-api/internal/application/auth"
	"github.com/dayflow/dayflow-api/internal/application/directory"
	appsettings "github.com/dayflow/dayflow-api/internal/application/settings"
	appuser "github.com/dayflow/dayflow-api/internal/application/user"
	"github.com/dayflow/dayflow-api/internal/bootstrap"
	"github.com/dayflow/dayflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/dayflow/dayflow-api/internal/interfaces/http"
	appsession "github.com/dayflow/dayflow-api/internal/session"
	"github.com/dayflow/dayflow-api/pkg/config"
	"github.com/dayflow/dayflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	sessionStore := postgres.NewSessionStore(pool)

	if err := bootstrap.EnsureAdmin(ctx, cfg.Admin, userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin")
	}

	sessions := appsession.NewManager(sessionStore, cfg.Session.TTL())
	authUC := auth.NewUseCase(userRepo)
	userUC := appuser.NewUseCase(userRepo)
	settingsUC := appsettings.NewUseCase(settingsRepo)
	directoryUC := directory.NewUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// El SPA corre en otro origen y manda la cookie de sesión.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origin,
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DayFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		DirectoryUC: directoryUC,
		Sessions:    sessions,
		SessionCfg:  cfg.Session,
		Development: cfg.App.Development(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
