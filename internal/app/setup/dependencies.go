package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/flashmart/checkout-service/internal/clock"
	"github.com/flashmart/checkout-service/internal/config"
	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/kafka"
	"github.com/flashmart/checkout-service/internal/infrastructure/logger"
	"github.com/flashmart/checkout-service/internal/infrastructure/metrics"
	"github.com/flashmart/checkout-service/internal/infrastructure/migrate"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/repository"
	"github.com/flashmart/checkout-service/internal/infrastructure/rediscache"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.CheckoutConfig
	Logger       *zap.Logger
	DB           *gorm.DB
	Cache        *rediscache.RedisProductCache
	Publisher    domain.OrderEventPublisher
	Metrics      *metrics.CheckoutMetrics
	Clock        clock.Clock
	Repositories *Repositories
}

type Repositories struct {
	ProductRepo domain.ProductRepository
	HoldRepo    domain.HoldRepository
	OrderRepo   domain.OrderRepository
	WebhookRepo domain.WebhookLogRepository
	TxManager   domain.TxManager
}

// InitializeDependencies stands up everything below the usecases: config,
// logging, database with schema applied, cache, events, metrics.
func InitializeDependencies(serviceName string) (*Dependencies, error) {
	cfg := config.MustLoad()
	log := logger.MustInitLogger(serviceName, cfg.LogConfig.LogLevel)

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.CheckoutDB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	cache := rediscache.NewRedisProductCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	repos := &Repositories{
		ProductRepo: repository.NewDefaultProductRepository(db),
		HoldRepo:    repository.NewDefaultHoldRepository(db),
		OrderRepo:   repository.NewDefaultOrderRepository(db),
		WebhookRepo: repository.NewDefaultWebhookLogRepository(db),
		TxManager:   postgres.NewGormTxManager(db),
	}

	return &Dependencies{
		Config:       cfg,
		Logger:       log,
		DB:           db,
		Cache:        cache,
		Publisher:    initOrderPublisher(cfg, log),
		Metrics:      metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer),
		Clock:        clock.NewSystem(),
		Repositories: repos,
	}, nil
}

func initOrderPublisher(cfg *config.CheckoutConfig, log *zap.Logger) domain.OrderEventPublisher {
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Brokers) == 0 {
		log.Info("order events disabled")
		return kafka.NewNoopPublisher()
	}
	log.Info("order events enabled",
		zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	return kafka.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}
