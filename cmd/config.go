package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	LogLevel         string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	PayRate               decimal.Decimal
	ReturnWindow          time.Duration
	TaxRate               decimal.Decimal
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal

	// Kafka is optional; without brokers notifications are only logged.
	KafkaBrokers          []string
	KafkaOrderEventsTopic string
	NotifyTimeout         time.Duration

	// Redis is optional; without it every replica runs every job tick.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AutoAssignSchedule   string
	AutoAssignBatch      int
	CouponExpirySchedule string
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the configuration through getenv, applying defaults to
// unset variables. Every malformed value is reported.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}

	cfg := Config{
		HTTPPort:         env.str("HTTP_PORT", "8080"),
		HTTPReadTimeout:  env.duration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: env.duration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		LogLevel:         env.str("LOG_LEVEL", "info"),

		DBHost:     env.str("DB_HOST", "localhost"),
		DBPort:     env.str("DB_PORT", "5432"),
		DBUser:     env.str("DB_USER", "postgres"),
		DBPassword: env.str("DB_PASSWORD", ""),
		DBName:     env.str("DB_NAME", "storefront"),
		DBSslMode:  env.str("DB_SSLMODE", "disable"),

		JWTSecret: env.str("JWT_SECRET", ""),

		PayRate:               env.decimal("DELIVERY_PAY_RATE", "0.10"),
		ReturnWindow:          env.duration("RETURN_WINDOW", 30*24*time.Hour),
		TaxRate:               env.decimal("TAX_RATE", "0"),
		ShippingFee:           env.decimal("SHIPPING_FEE", "10"),
		FreeShippingThreshold: env.decimal("FREE_SHIPPING_THRESHOLD", "100"),

		KafkaBrokers:          env.list("KAFKA_HOST"),
		KafkaOrderEventsTopic: env.str("KAFKA_ORDER_EVENTS_TOPIC", "storefront.order-events"),
		NotifyTimeout:         env.duration("NOTIFY_TIMEOUT", 5*time.Second),

		RedisAddr:     env.str("REDIS_ADDR", ""),
		RedisPassword: env.str("REDIS_PASSWORD", ""),
		RedisDB:       env.integer("REDIS_DB", 0),

		AutoAssignSchedule:   env.str("AUTO_ASSIGN_SCHEDULE", "*/30 * * * * *"),
		AutoAssignBatch:      env.integer("AUTO_ASSIGN_BATCH", 10),
		CouponExpirySchedule: env.str("COUPON_EXPIRY_SCHEDULE", "0 */5 * * * *"),
	}

	if cfg.JWTSecret == "" {
		env.problems = append(env.problems, errors.New("JWT_SECRET is required"))
	}
	if cfg.PayRate.IsNegative() || cfg.PayRate.GreaterThan(decimal.NewFromInt(1)) {
		env.problems = append(env.problems, fmt.Errorf("DELIVERY_PAY_RATE must be within [0, 1], got %s", cfg.PayRate))
	}
	if cfg.ReturnWindow <= 0 {
		env.problems = append(env.problems, fmt.Errorf("RETURN_WINDOW must be positive, got %s", cfg.ReturnWindow))
	}

	if err := errors.Join(env.problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type envReader struct {
	getenv   func(string) string
	problems []error
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(r.getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) integer(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (r *envReader) decimal(key, fallback string) decimal.Decimal {
	raw := r.str(key, fallback)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		r.problems = append(r.problems, fmt.Errorf("%s: %w", key, err))
		return decimal.RequireFromString(fallback)
	}
	return v
}
