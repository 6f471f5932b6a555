package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"loadboard/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Store backends accepted by STORE_BACKEND.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort            string
	StoreBackend        string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	DBAutoMigrate       bool
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	LockExpiry          time.Duration
	OrphanAuditSchedule string
	LogLevel            string
	LogFile             string
}

// LoadConfig reads the .env file named by --env-file (a missing file is not
// an error), then the environment, then the command-line overrides in args.
// Variables already set in the environment win over the .env file.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("loadboard", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path to a .env file")
	httpPort := flags.String("http-port", "", "HTTP port, overrides HTTP_PORT")
	store := flags.String("store", "", "store backend (postgres|memory), overrides STORE_BACKEND")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", *envFile, err)
	}

	autoMigrate, migrateErr := envBool("DB_AUTO_MIGRATE", true)
	redisDB, redisDBErr := envInt("REDIS_DB", 0)
	lockExpiry, lockExpiryErr := envDuration("LOCK_EXPIRY", 10*time.Second)
	if err := errors.Join(migrateErr, redisDBErr, lockExpiryErr); err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:            envString("HTTP_PORT", "8080"),
		StoreBackend:        strings.ToLower(envString("STORE_BACKEND", StorePostgres)),
		DBHost:              envString("DB_HOST", "localhost"),
		DBPort:              envString("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envString("DB_SSLMODE", "disable"),
		DBAutoMigrate:       autoMigrate,
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
		LockExpiry:          lockExpiry,
		OrphanAuditSchedule: os.Getenv("ORPHAN_AUDIT_SCHEDULE"),
		LogLevel:            envString("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
	}

	if *httpPort != "" {
		config.HTTPPort = *httpPort
	}
	if *store != "" {
		config.StoreBackend = strings.ToLower(*store)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory:
		return nil
	case StorePostgres:
		if c.DBName == "" || c.DBUser == "" {
			return errors.New("DB_NAME and DB_USER are required for the postgres store")
		}
		return nil
	default:
		return fmt.Errorf("unknown store backend %q, want %s or %s", c.StoreBackend, StorePostgres, StoreMemory)
	}
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
