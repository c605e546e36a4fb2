package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/mentoria-pro/internal/application/auth"
	"github.com/tu-usuario/mentoria-pro/internal/application/authz"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
	"github.com/tu-usuario/mentoria-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mentoria-pro/internal/interfaces/http"
	"github.com/tu-usuario/mentoria-pro/pkg/config"
	"github.com/tu-usuario/mentoria-pro/pkg/logger"
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
	profileRepo := postgres.NewProfileRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	memberRepo := postgres.NewMembershipRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	mentorshipRepo := postgres.NewMentorshipRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := authz.NewEngine(memberRepo)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, profileRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, userRepo)
	groupUC := usecase.NewGroupUseCase(groupRepo, memberRepo, userRepo, engine, txRunner, notificationUC)
	contentUC := usecase.NewContentUseCase(postRepo, commentRepo, groupRepo, memberRepo, engine, txRunner)
	reportUC := usecase.NewReportUseCase(reportRepo, userRepo)
	mentorshipUC := usecase.NewMentorshipUseCase(mentorshipRepo, userRepo, notificationUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mentoria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		GroupUC:        groupUC,
		ContentUC:      contentUC,
		ReportUC:       reportUC,
		NotificationUC: notificationUC,
		MentorshipUC:   mentorshipUC,
		JWTSecret:      cfg.JWT.Secret,
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
