package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/gymlog_bot/internal/app"
	"github.com/Freeeeeet/gymlog_bot/internal/config"
	"github.com/Freeeeeet/gymlog_bot/internal/controller"
	"github.com/Freeeeeet/gymlog_bot/internal/repository"
	"github.com/Freeeeeet/gymlog_bot/internal/service"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting gymlog bot", zap.String("environment", cfg.Environment))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrator.Close()

	sessions, err := session.Open(cfg.SessionPath)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err))
	}
	defer sessions.Close()

	workoutRepo := repository.NewWorkoutRepository(pool)
	exerciseRepo := repository.NewExerciseRepository(pool)
	setRepo := repository.NewSetRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)

	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, setRepo, logger)
	templateService := service.NewTemplateService(templateRepo, logger)
	statsService := service.NewStatsService(workoutRepo, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		workoutService,
		templateService,
		statsService,
		sessions,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	maintenance := app.NewMaintenance(sessions, logger)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	botController.Start(ctx)

	logger.Info("Bot stopped")
}
