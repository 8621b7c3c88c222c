package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CheckoutConfig struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	CheckoutDB `yaml:"checkout_db"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
	Checkout   `yaml:"checkout"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

type CheckoutDB struct {
	Dsn            string `yaml:"dsn" env:"CHECKOUT_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"CHECKOUT_DB_MIGRATIONS" env-default:"migrations"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_ORDER_TOPIC" env-default:"checkout.order-events"`
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

type Checkout struct {
	HoldTTL         time.Duration `yaml:"hold_ttl" env:"HOLD_TTL" env-default:"2m"`
	ProductCacheTTL time.Duration `yaml:"product_cache_ttl" env:"PRODUCT_CACHE_TTL" env-default:"5m"`
	SweepInterval   time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL" env-default:"30s"`
}

// MustLoad reads CHECKOUT_CONFIG_PATH when set, otherwise configures from
// environment variables alone.
func MustLoad() *CheckoutConfig {
	var cfg CheckoutConfig

	configPath := os.Getenv("CHECKOUT_CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("failed to find config file: %v\n", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %v", err)
	}
	return &cfg
}
