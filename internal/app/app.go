package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/audit"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/postgres"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/redis"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/tracing"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"

	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config        *config.Container
	Logger        *logger.LoggerAdapter
	DB            *sql.DB
	RedisClient   *redisClient.Client
	RentalService *services.RentalService
	HTTPRouter    *http.Router

	shutdownTracing func(context.Context) error
}

// auditBackend is the pair of logs the rental service writes to, plus the
// readers used by the audit trail endpoint.
type auditBackend struct {
	creation ports.AuditAppender
	rental   ports.AuditAppender
	readers  []ports.AuditReader
	db       *sql.DB
	redis    *redisClient.Client
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":   cfg.App.Name,
		"env":   cfg.App.Env,
		"audit": cfg.Audit.Backend,
	})

	// Tracing
	shutdownTracing, err := tracing.Setup(ctx, cfg.App, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	// Audit logs
	backend, err := openAuditBackend(ctx, cfg, loggerAdapter)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Services
	rentalService := services.NewRentalService(
		audit.NewRecordSink("creation", backend.creation, loggerAdapter),
		audit.NewRecordSink("rental", backend.rental, loggerAdapter),
		loggerAdapter,
	)

	catalogs := make(map[domain.CatalogKind]*domain.Catalog, len(domain.CatalogKinds))
	for _, kind := range domain.CatalogKinds {
		catalogs[kind] = domain.NewCatalog(kind)
	}
	for _, kind := range []domain.CatalogKind{domain.MountainCatalog, domain.ElectricCatalog, domain.FoldingCatalog} {
		if err := rentalService.RegisterCatalog(catalogs[kind]); err != nil {
			backend.close()
			_ = shutdownTracing(ctx)
			return nil, fmt.Errorf("failed to register catalog: %w", err)
		}
	}

	if cfg.App.Seed {
		if err := seed(ctx, rentalService, catalogs); err != nil {
			backend.close()
			_ = shutdownTracing(ctx)
			return nil, fmt.Errorf("failed to seed bikes: %w", err)
		}
		loggerAdapter.Info("Demo bikes seeded", map[string]interface{}{
			"catalogs": rentalService.Inventory().Size(),
		})
	}

	// HTTP Handlers
	mu := &sync.Mutex{}
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	rentalHandler := http.NewRentalHandler(rentalService, catalogs, backend.readers, mu, loggerAdapter, metrics)
	catalogHandler := http.NewCatalogHandler(rentalService, mu, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		rentalHandler,
		catalogHandler,
	)
	if err != nil {
		backend.close()
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:          cfg,
		Logger:          loggerAdapter,
		DB:              backend.db,
		RedisClient:     backend.redis,
		RentalService:   rentalService,
		HTTPRouter:      router,
		shutdownTracing: shutdownTracing,
	}, nil
}

func openAuditBackend(ctx context.Context, cfg *config.Container, log ports.LoggerPort) (*auditBackend, error) {
	switch cfg.Audit.Backend {
	case config.AuditBackendPostgres:
		// Connect DB
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		// Migrate DB
		if err := postgres.Migrate(db, cfg.DB.MigrationsDir); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		creation := postgres.NewAuditRepository(db, "creation")
		rental := postgres.NewAuditRepository(db, "rental")
		return &auditBackend{
			creation: creation,
			rental:   rental,
			readers:  []ports.AuditReader{creation, rental},
			db:       db,
		}, nil

	case config.AuditBackendRedis:
		conn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := conn.Ping(ctx).Result(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		creation := redis.NewStreamAdapter(conn, cfg.Audit.CreationStream, cfg.Audit.StreamMaxLen)
		rental := redis.NewStreamAdapter(conn, cfg.Audit.RentalStream, cfg.Audit.StreamMaxLen)
		return &auditBackend{
			creation: creation,
			rental:   rental,
			readers:  []ports.AuditReader{creation, rental},
			redis:    conn,
		}, nil

	default:
		creation, err := audit.NewFileLog(cfg.Audit.CreationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open creation log: %w", err)
		}
		rental, err := audit.NewFileLog(cfg.Audit.RentalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open rental log: %w", err)
		}
		log.Info("Audit logs opened", map[string]interface{}{
			"creation": creation.Path(),
			"rental":   rental.Path(),
		})
		return &auditBackend{
			creation: creation,
			rental:   rental,
			readers:  []ports.AuditReader{creation, rental},
		}, nil
	}
}

func (b *auditBackend) close() {
	if b.db != nil {
		b.db.Close()
	}
	if b.redis != nil {
		b.redis.Close()
	}
}

// Runs all services
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.HTTPRouter.Addr(),
	})

	if err := a.HTTPRouter.Serve(); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if err := a.shutdownTracing(ctx); err != nil {
		a.Logger.Error("Tracer shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	a.Logger.Sync()
	return nil
}
