package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/lesson_planner/internal/config"
	"github.com/Freeeeeet/lesson_planner/internal/controller"
	"github.com/Freeeeeet/lesson_planner/internal/controller/handlers"
	"github.com/Freeeeeet/lesson_planner/internal/controller/state"
	"github.com/Freeeeeet/lesson_planner/internal/metrics"
	"github.com/Freeeeeet/lesson_planner/internal/repository"
	"github.com/Freeeeeet/lesson_planner/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Run собирает зависимости и работает до отмены ctx
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if cfg.MigrationsEnabled {
		migrator, err := NewMigrator(pool, logger)
		if err != nil {
			return err
		}
		err = migrator.Run(ctx)
		migrator.Close()
		if err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	planningMetrics := metrics.New(registry)

	if cfg.MetricsAddr != "" {
		ServeMetrics(ctx, cfg.MetricsAddr, registry, logger)
	}

	userRepo := repository.NewUserRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	calendarRepo := repository.NewExclusionCalendarRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	timetableService := service.NewTimetableService(timetableRepo, location, logger)
	calendarService := service.NewCalendarService(calendarRepo, logger)
	planningService := service.NewPlanningService(
		repository.NewPlanningStore(pool, logger),
		sessionRepo,
		planningMetrics,
		location,
		logger,
	)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	cmdHandlers := handlers.NewHandlers(
		userService,
		timetableService,
		calendarService,
		planningService,
		state.NewManager(),
		location,
		logger,
	)

	botController := controller.NewBotController(botInstance, cmdHandlers, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return fmt.Errorf("register handlers: %w", err)
	}

	logger.Info("Lesson planner started",
		zap.String("timezone", location.String()),
		zap.Bool("migrations", cfg.MigrationsEnabled))

	botController.Start(ctx)
	return nil
}
