package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Notification transports
const (
	TransportSMTP  = "smtp"
	TransportKafka = "kafka"
	TransportLog   = "log"
)

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	EnableSwagger  bool
}

// DBConfig holds database configuration
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
	SampleRatio    float64
}

// RedisConfig drives the sign-in rate limiter. An empty Addr disables it.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	SignInLimit  int
	SignInWindow time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	AlertTopic string
	GroupID    string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type NotifyConfig struct {
	Transport string
	Recipient string
}

// SeedConfig describes the super admin created when the users table is empty.
type SeedConfig struct {
	EmployeeID string
	Username   string
	Email      string
	Password   string
}

type StockConfig struct {
	LowStockThreshold int64
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	Server      ServerConfig
	DB          DBConfig
	JWT         JWTConfig
	Tracing     TracingConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	SMTP        SMTPConfig
	Notify      NotifyConfig
	Seed        SeedConfig
	Stock       StockConfig
}

// Load reads configuration from the environment, after an optional .env file.
func Load(serviceName string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", serviceName),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:           getEnv("HTTP_PORT", "8080"),
			RequestTimeout: getEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second),
			EnableSwagger:  getEnvBool("HTTP_ENABLE_SWAGGER", true),
		},
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "inventorydb"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:        getEnvBool("TRACING_ENABLED", true),
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			SampleRatio:    getEnvFloat("TRACING_SAMPLE_RATIO", 1),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			SignInLimit:  getEnvInt("SIGNIN_RATE_LIMIT", 10),
			SignInWindow: getEnvDuration("SIGNIN_RATE_WINDOW", time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:    getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			AlertTopic: getEnv("KAFKA_ALERT_TOPIC", "stock-alerts"),
			GroupID:    getEnv("KAFKA_GROUP_ID", "inventory-notifier"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "inventory@localhost"),
			Timeout:  getEnvDuration("SMTP_TIMEOUT", 10*time.Second),
		},
		Notify: NotifyConfig{
			Transport: strings.ToLower(getEnv("NOTIFY_TRANSPORT", TransportSMTP)),
			Recipient: getEnv("NOTIFY_RECIPIENT", ""),
		},
		Seed: SeedConfig{
			EmployeeID: getEnv("SEED_ADMIN_EMPLOYEE_ID", "EMP-0001"),
			Username:   getEnv("SEED_ADMIN_USERNAME", "superadmin"),
			Email:      getEnv("SEED_ADMIN_EMAIL", ""),
			Password:   getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		Stock: StockConfig{
			LowStockThreshold: int64(getEnvInt("LOW_STOCK_THRESHOLD", 2)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no safe default.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	switch c.Notify.Transport {
	case TransportSMTP, TransportKafka, TransportLog:
	default:
		errs = append(errs, fmt.Errorf("NOTIFY_TRANSPORT %q is not one of smtp, kafka, log", c.Notify.Transport))
	}
	if c.Notify.Transport != TransportLog && c.Notify.Recipient == "" {
		errs = append(errs, errors.New("NOTIFY_RECIPIENT is required"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("TRACING_SAMPLE_RATIO must be between 0 and 1"))
	}
	if c.Stock.LowStockThreshold < 0 {
		errs = append(errs, errors.New("LOW_STOCK_THRESHOLD cannot be negative"))
	}
	if (c.Seed.Email == "") != (c.Seed.Password == "") {
		errs = append(errs, errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// DSN returns the PostgreSQL connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
