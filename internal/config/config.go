package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`

	DB  DBConfig  `yaml:"db"`
	JWT JWTConfig `yaml:"jwt"`

	// MaxAggregateMealIDs caps how many meals one shopping-list request may reference.
	MaxAggregateMealIDs int `yaml:"max_aggregate_meal_ids"`
	DefaultPageSize     int `yaml:"default_page_size"`
	MaxPageSize         int `yaml:"max_page_size"`
}

type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

// Load reads .env (optional), then the process environment, then the YAML file
// named by CONFIG_FILE if set. Values from the YAML file win.
func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}

	cfg := &Config{
		Env:  GetEnv("ENV", "development"),
		Port: GetEnv("PORT", "8080"),
		DB: DBConfig{
			DSN:             GetEnv("POSTGRES_URL", "host=localhost user=postgres password=postgres dbname=mealplanner port=5432 sslmode=disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20, log),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5, log),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute, log),
		},
		JWT: JWTConfig{
			Secret: GetEnv("JWT_SECRET", ""),
			TTL:    getEnvDuration("JWT_TTL", 60*time.Minute, log),
		},
		MaxAggregateMealIDs: getEnvInt("MAX_AGGREGATE_MEAL_IDS", 100, log),
		DefaultPageSize:     getEnvInt("DEFAULT_PAGE_SIZE", 20, log),
		MaxPageSize:         getEnvInt("MAX_PAGE_SIZE", 100, log),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := ReadConfig(path, cfg); err != nil {
			log.Error("unable to read config file", zap.String("path", path), zap.Error(err))
		}
	}

	if cfg.JWT.Secret == "" {
		log.Warn("JWT_SECRET is empty, the server will refuse to start")
	}

	return cfg
}

// ReadConfig overlays the YAML document at filePath onto cfg.
func ReadConfig(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// GetEnv returns the environment variable or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, log *zap.Logger) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("invalid integer in environment, using default", zap.String("key", key), zap.Int("default", defaultValue))
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration, log *zap.Logger) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn("invalid duration in environment, using default", zap.String("key", key), zap.Duration("default", defaultValue))
		return defaultValue
	}
	return v
}
