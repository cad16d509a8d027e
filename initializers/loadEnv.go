package initializers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is read once at startup and handed to every component that needs
// it. Nothing else reads the environment.
type Config struct {
	Port          string         `validate:"required,numeric"`
	DBDriver      string         `validate:"oneof=mysql postgres"`
	DBHost        string         `validate:"required"`
	DBPort        string         `validate:"required,numeric"`
	DBUser        string         `validate:"required"`
	DBPassword    string         `validate:"omitempty"`
	DBName        string         `validate:"required"`
	JWTSecret     string         `validate:"required,min=16"`
	TimeZone      string         `validate:"required"`
	Location      *time.Location `validate:"-"`
	RedisAddr     string         `validate:"omitempty,hostname_port"`
	MenuCacheTTL  time.Duration  `validate:"gte=0"`
	KafkaBrokers  []string       `validate:"omitempty,dive,hostname_port"`
	KafkaTopic    string         `validate:"required_with=KafkaBrokers"`
	CORSOrigins   []string       `validate:"required,min=1,dive,url"`
	PublicBaseURL string         `validate:"required,url"`
	ViaCEPBaseURL string         `validate:"required,url"`
	LogLevel      string         `validate:"oneof=debug info warn error"`
	GinMode       string         `validate:"oneof=debug release test"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("MENU_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_CACHE_TTL: %w", err)
	}

	driver := getEnv("DB_DRIVER", "mysql")
	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      driver,
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", defaultPort),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "bekosher"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TimeZone:      getEnv("TIME_ZONE", "America/Sao_Paulo"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		MenuCacheTTL:  ttl,
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "bekosher.orders"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		ViaCEPBaseURL: getEnv("VIACEP_BASE_URL", "https://viacep.com.br"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		GinMode:       getEnv("GIN_MODE", "release"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.Location, err = time.LoadLocation(config.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE: %w", err)
	}
	return config, nil
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
