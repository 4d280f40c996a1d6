package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	SnapshotFile  = "file"
	SnapshotRedis = "redis"
)

type Config struct {
	Port        string
	Environment string

	Storage    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	RateLimitPerMin int

	SnapshotBackend string
	SnapshotDir     string

	ProfileDefaultsFile string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// DSNForLog hides the password.
func (c *Config) DSNForLog() string {
	return fmt.Sprintf("postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "production"),

		Storage:    getEnv("STORAGE_BACKEND", StoragePostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "vybe_user"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "vybe_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       getEnv("JWT_ISSUER", "vybe"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", 24*time.Hour),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 100),

		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", SnapshotFile),
		SnapshotDir:     getEnv("SNAPSHOT_DIR", "./data/workouts"),

		ProfileDefaultsFile: os.Getenv("PROFILE_DEFAULTS_FILE"),
	}

	if cfg.DBPassword == "" && cfg.Storage == StoragePostgres {
		log.Println("WARNING: DB_PASSWORD is not set!")
	}
	if cfg.SnapshotBackend == SnapshotRedis && !cfg.RedisEnabled() {
		log.Println("WARNING: SNAPSHOT_BACKEND=redis without REDIS_HOST, falling back to file snapshots")
		cfg.SnapshotBackend = SnapshotFile
	}

	return cfg
}

// Validate reports settings the API cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage)
	}
	switch c.SnapshotBackend {
	case SnapshotFile, SnapshotRedis:
	default:
		return fmt.Errorf("unknown SNAPSHOT_BACKEND %q", c.SnapshotBackend)
	}
	return nil
}

// ProfileDefaults reads the optional YAML defaults file. Keys left out keep
// the built-in values.
func (c *Config) ProfileDefaults() (domain.Profile, error) {
	base := domain.DefaultProfile()
	if c.ProfileDefaultsFile == "" {
		return base, nil
	}

	raw, err := os.ReadFile(c.ProfileDefaultsFile)
	if err != nil {
		return base, fmt.Errorf("read profile defaults: %w", err)
	}
	return ParseProfileDefaults(raw)
}

func ParseProfileDefaults(raw []byte) (domain.Profile, error) {
	var p domain.Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return domain.DefaultProfile(), fmt.Errorf("decode profile defaults: %w", err)
	}
	return p.WithDefaults(domain.DefaultProfile()), nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARNING: %s=%q is not a number, using %d", key, v, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("WARNING: %s=%q is not a duration, using %s", key, v, defaultVal)
		return defaultVal
	}
	return d
}
