package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Parqueadero-api/internal/application/auth"
	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/application/validation"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	infracache "github.com/jhoicas/Parqueadero-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Parqueadero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Parqueadero-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Parqueadero-api/internal/interfaces/http"
	"github.com/jhoicas/Parqueadero-api/pkg/config"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	var companyRepo repository.CompanyRepository = postgres.NewCompanyRepository(pool)
	if cfg.Redis.Enabled() {
		client, err := infracache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// Sin Redis se sirve directo desde PostgreSQL.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer client.Close()
			ttl := time.Duration(cfg.Redis.TTL) * time.Second
			companyRepo = infracache.NewCompanyRepository(companyRepo, infracache.NewRedisStore(client), ttl, log)
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("caché de empresas activa")
		}
	}
	profileRepo := postgres.NewProfileRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, validation.NewCompanyValidator())
	authUC := auth.NewAuthUseCase(profileRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Parqueadero API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		AuthUC:    authUC,
		NewPrinter: func(w io.Writer) ticket.SurfaceOpener {
			return infrapdf.NewTicketPrinter(w)
		},
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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
