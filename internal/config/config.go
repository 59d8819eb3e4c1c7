package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Token   *Token
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Audit   *Audit
		Tracing *Tracing
	}

	App struct {
		Name string
		Env  string
		Seed bool
	}

	Token struct {
		Secret string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Audit struct {
		Backend        string
		CreationPath   string
		RentalPath     string
		CreationStream string
		RentalStream   string
		StreamMaxLen   int64
	}

	Tracing struct {
		Enabled  bool
		Endpoint string
	}
)

const (
	AuditBackendFile     = "file"
	AuditBackendPostgres = "postgres"
	AuditBackendRedis    = "redis"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "webike-rental"),
		Env:  getEnv("APP_ENV", "development"),
		Seed: getBool("APP_SEED", false),
	}

	token := &Token{
		Secret: os.Getenv("TOKEN_SECRET"),
	}

	db := &DB{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8081"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getInt("REDIS_DB", 0),
	}

	audit := &Audit{
		Backend:        strings.ToLower(getEnv("AUDIT_BACKEND", AuditBackendFile)),
		CreationPath:   getEnv("AUDIT_CREATION_PATH", "data/bikes.log"),
		RentalPath:     getEnv("AUDIT_RENTAL_PATH", "data/rentals.log"),
		CreationStream: getEnv("AUDIT_CREATION_STREAM", "webike:audit:bikes"),
		RentalStream:   getEnv("AUDIT_RENTAL_STREAM", "webike:audit:rentals"),
		StreamMaxLen:   int64(getInt("AUDIT_STREAM_MAXLEN", 0)),
	}
	switch audit.Backend {
	case AuditBackendFile, AuditBackendPostgres, AuditBackendRedis:
	default:
		return nil, errors.New("AUDIT_BACKEND must be one of file, postgres, redis")
	}

	tracing := &Tracing{
		Enabled:  getBool("OTEL_ENABLED", false),
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	return &Container{
		App:     app,
		Token:   token,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
		Audit:   audit,
		Tracing: tracing,
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
