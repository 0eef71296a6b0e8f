package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	server "github.com/KangasCode/nous-paradeigma/internal/adapters/primary/http"
	healthcheckController "github.com/KangasCode/nous-paradeigma/internal/adapters/primary/http/controllers/healthcheck"
	predictionController "github.com/KangasCode/nous-paradeigma/internal/adapters/primary/http/controllers/prediction"
	profileController "github.com/KangasCode/nous-paradeigma/internal/adapters/primary/http/controllers/profile"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/ephemeris"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/gemini"
	kafkaAdapter "github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/kafka"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/storage/redis"
	"github.com/KangasCode/nous-paradeigma/internal/pkg/logger"
	cachePort "github.com/KangasCode/nous-paradeigma/internal/ports/cache"
	eventsPort "github.com/KangasCode/nous-paradeigma/internal/ports/events"
	predictionRepo "github.com/KangasCode/nous-paradeigma/internal/repository/prediction"
	userRepo "github.com/KangasCode/nous-paradeigma/internal/repository/user"
	"github.com/KangasCode/nous-paradeigma/internal/services/astrology"
	"github.com/KangasCode/nous-paradeigma/internal/services/jobs"
	predictionUsecase "github.com/KangasCode/nous-paradeigma/internal/usecases/prediction"
	profileUsecase "github.com/KangasCode/nous-paradeigma/internal/usecases/profile"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running nous-paradeigma")

	db, err := a.initPostgres()
	if err != nil {
		return fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	users := userRepo.New(persistenceLayer, a.Log)
	predictions := predictionRepo.New(persistenceLayer, a.Log)

	var transitCache cachePort.Cache
	if a.Cfg.EnableRedis {
		redisConn, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		transitCache = redisAdapter.NewClient(redisConn)
		a.Log.Info("redis connected successfully")
	}

	generator, err := gemini.New(ctx, a.Cfg.Gemini, a.Log)
	if err != nil {
		return fmt.Errorf("failed to init gemini client: %w", err)
	}

	var eventPublisher eventsPort.Publisher
	if a.Cfg.EnableKafka {
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			return fmt.Errorf("failed to init kafka producer: %w", err)
		}
		eventPublisher = producer
	}

	chartService := astrology.NewChartService(ephemeris.New(), transitCache, a.Log)

	predictionService := predictionUsecase.New(users, predictions, chartService, generator, eventPublisher, a.Log)
	profileService := profileUsecase.New(users, a.Log)

	healthCheck := healthcheckController.New(db, a.Log)
	profiles := profileController.New(profileService, a.Log)
	predictionsAPI := predictionController.New(predictionService, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, profiles, predictionsAPI)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	if a.Cfg.EnableScheduler {
		scheduler := jobs.NewScheduler(a.Log)
		scheduler.Register(jobs.NewDailyPredictions(predictionService, a.Log))
		scheduler.Register(jobs.NewWeeklyPredictions(predictionService, a.Log))
		scheduler.Register(jobs.NewMonthlyPredictions(predictionService, a.Log))

		g.Go(func() error {
			return scheduler.Start(gCtx)
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if eventPublisher != nil {
			if err := eventPublisher.Close(); err != nil {
				a.Log.Error("failed to close kafka producer", "error", err)
			}
		}

		if transitCache != nil {
			if err := transitCache.Close(); err != nil {
				a.Log.Error("failed to close redis client", "error", err)
			}
		}

		if err := generator.Close(); err != nil {
			a.Log.Error("failed to close gemini client", "error", err)
		}

		if err := db.Close(); err != nil {
			a.Log.Error("failed to close database", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
