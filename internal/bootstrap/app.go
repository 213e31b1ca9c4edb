package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"pulseguard-backend/internal/dashboard"
	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/queue"
	"pulseguard-backend/internal/records"
	"pulseguard-backend/internal/reports"
	"pulseguard-backend/internal/shared/config"
	"pulseguard-backend/internal/shared/server"
	"pulseguard-backend/internal/shared/storage/db"
	"pulseguard-backend/internal/shared/storage/object"
	localstore "pulseguard-backend/internal/shared/storage/object/local"
	s3store "pulseguard-backend/internal/shared/storage/object/s3"
	"pulseguard-backend/internal/shared/telemetry"
	"pulseguard-backend/internal/weather"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client
	// AMQP is set when QUEUE_BACKEND=rabbitmq; workers consume from it.
	AMQP  *queue.AMQPClient
	Redis *redis.Client

	RecordsRepo records.Repo
	ReportsRepo reports.Repo

	RecordsService   *records.Service
	DashboardService *dashboard.Service
	WeatherService   *weather.Service
	ReportsService   *reports.Service

	RecordsHandler   *records.Handler
	DashboardHandler *dashboard.Handler
	WeatherHandler   *weather.Handler
	ReportsHandler   *reports.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildQueue(ctx, app); err != nil {
		return nil, err
	}
	if err := buildRedis(ctx, app); err != nil {
		return nil, err
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Records:   app.RecordsHandler,
		Dashboard: app.DashboardHandler,
		Weather:   app.WeatherHandler,
		Reports:   app.ReportsHandler,
	})
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	if a.AMQP != nil {
		errs = append(errs, a.AMQP.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil && !db.IsLambdaRuntime() {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Error("bootstrap.db.memory", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.QueueBackend {
	case "sqs":
		client, err := queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.SQSQueueURL)
		if err != nil {
			return err
		}
		app.Queue = client
	case "rabbitmq":
		client, err := queue.DialAMQP(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.RabbitMQDeadLetter)
		if err != nil {
			return err
		}
		app.Queue = client
		app.AMQP = client
	}
	return nil
}

func buildRedis(ctx context.Context, app *App) error {
	if strings.TrimSpace(app.Config.RedisURL) == "" {
		return nil
	}
	client, err := weather.NewRedisClient(ctx, app.Config.RedisURL)
	if err != nil {
		if app.Config.IsDevLike() {
			telemetry.Error("bootstrap.redis.memory", map[string]any{"error": err.Error()})
			return nil
		}
		return err
	}
	app.Redis = client
	return nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.RecordsRepo = &records.PGRepo{DB: app.DB}
		app.ReportsRepo = &reports.PGRepo{DB: app.DB}
	} else {
		app.RecordsRepo = records.NewMemoryRepo()
		app.ReportsRepo = reports.NewMemoryRepo()
	}

	app.RecordsService = records.NewService(app.RecordsRepo, app.Config.HistoryLimit)
	app.DashboardService = dashboard.NewService(app.RecordsService, healthmetrics.DefaultRandom)
	app.ReportsService = reports.NewService(app.RecordsService, app.ReportsRepo, app.Store, app.Queue)

	var provider weather.Provider
	client, err := weather.NewClient(app.Config.WeatherAPIKey, app.Config.WeatherBaseURL, app.Config.WeatherTimeout)
	switch {
	case err == nil:
		provider = client
	case errors.Is(err, weather.ErrNotConfigured):
		telemetry.Info("bootstrap.weather.disabled", map[string]any{"reason": "WEATHER_API_KEY empty"})
	default:
		return err
	}
	var cache weather.Cache
	if app.Redis != nil {
		cache = weather.NewRedisCache(app.Redis)
	}
	app.WeatherService = weather.NewService(provider, cache, app.Config.WeatherTTL)

	app.RecordsHandler = records.NewHandler(app.RecordsService)
	app.DashboardHandler = dashboard.NewHandler(app.DashboardService)
	app.WeatherHandler = weather.NewHandler(app.WeatherService)
	app.ReportsHandler = reports.NewHandler(app.ReportsService)
	return nil
}
