// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutriplan/v1/internal/application/analytics"
	"github.com/nutriplan/v1/internal/application/planner"
	appuser "github.com/nutriplan/v1/internal/application/user"
	domaincatalog "github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	infracatalog "github.com/nutriplan/v1/internal/infrastructure/catalog"
	"github.com/nutriplan/v1/internal/infrastructure/config"
	"github.com/nutriplan/v1/internal/infrastructure/http/apiserver"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	gormrepo "github.com/nutriplan/v1/internal/infrastructure/persistence/gorm"
	"github.com/nutriplan/v1/internal/infrastructure/persistence/memory"
	"github.com/nutriplan/v1/internal/infrastructure/persistence/redis"
	"github.com/nutriplan/v1/internal/ports/inbound"
	"github.com/nutriplan/v1/internal/ports/outbound"
	"github.com/nutriplan/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	CatalogModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides Prometheus metrics
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	gormrepo.NewDatabase,
)

// CacheModule provides the cache repository, Redis when reachable
// with an in-process fallback for development
var CacheModule = fx.Provide(
	func(cfg *config.Config, metrics *monitoring.Metrics, log *zap.Logger) outbound.CacheRepository {
		client, err := redis.NewClient(cfg)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
			return memory.NewCacheRepository()
		}
		return redis.NewCacheRepository(client, metrics, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewUserRepository,
	gormrepo.NewFoodItemRepository,
	gormrepo.NewFoodLogRepository,
	gormrepo.NewMealPlanRepository,
)

// CatalogModule provides the food catalog snapshot and its loader
var CatalogModule = fx.Provide(
	func() *domaincatalog.Store {
		return domaincatalog.NewStore(domaincatalog.New(nil))
	},
	infracatalog.NewLoader,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(store *domaincatalog.Store, cfg *config.Config) *mealplan.Assembler {
		var factory mealplan.SourceFactory
		if cfg.Planner.RandomSeed != 0 {
			seed := cfg.Planner.RandomSeed
			factory = mealplan.FixedSeedSource(seed)
		}
		return mealplan.NewAssembler(store, factory)
	},

	fx.Annotate(
		func(userRepo outbound.UserRepository, cfg *config.Config, metrics *monitoring.Metrics, log *zap.Logger) *appuser.Service {
			jwtSecret := cfg.Auth.JWTSecret
			if jwtSecret == "" {
				jwtSecret = "development-secret"
			}
			return appuser.NewService(userRepo, jwtSecret, metrics, log)
		},
		fx.As(new(inbound.UserService)),
	),

	fx.Annotate(
		func(
			userRepo outbound.UserRepository,
			planRepo outbound.MealPlanRepository,
			assembler *mealplan.Assembler,
			cfg *config.Config,
			metrics *monitoring.Metrics,
			log *zap.Logger,
		) *planner.Service {
			return planner.NewService(userRepo, planRepo, assembler, cfg.Planner.DefaultDays, metrics, log)
		},
		fx.As(new(inbound.PlannerService)),
	),

	fx.Annotate(
		analytics.NewService,
		fx.As(new(inbound.AnalyticsService)),
	),
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks wires startup and shutdown behavior
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	loader *infracatalog.Loader,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting NutriPlan",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			if err := loader.Load(ctx, cfg.Catalog.CSVPath); err != nil {
				return err
			}

			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down NutriPlan")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
