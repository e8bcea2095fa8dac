// Package config reads the server settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"

	AuthFirebase = "firebase"
	AuthLocal    = "local"
)

type Config struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration

	StoreDriver  string
	AuthProvider string

	FirebaseCredentialsJSON string
	FirebaseProjectID       string
	FirebaseAPIKey          string

	DatabaseURL string
	RabbitMQURL string
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:                    withDefault(getenv("PORT"), "8080"),
		JWTSecret:               getenv("JWT_SECRET"),
		StoreDriver:             withDefault(getenv("STORE_DRIVER"), StoreFirestore),
		FirebaseCredentialsJSON: getenv("FIREBASE_CREDENTIALS_JSON"),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID"),
		FirebaseAPIKey:          getenv("FIREBASE_API_KEY"),
		RabbitMQURL:             getenv("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	ttl, err := time.ParseDuration(withDefault(getenv("TOKEN_TTL"), "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	switch cfg.StoreDriver {
	case StoreFirestore:
		cfg.AuthProvider = withDefault(getenv("AUTH_PROVIDER"), AuthFirebase)
	case StorePostgres:
		cfg.DatabaseURL = databaseURL(getenv)
		cfg.AuthProvider = withDefault(getenv("AUTH_PROVIDER"), AuthFirebase)
	case StoreMemory:
		cfg.AuthProvider = withDefault(getenv("AUTH_PROVIDER"), AuthLocal)
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	switch cfg.AuthProvider {
	case AuthFirebase:
		if cfg.FirebaseAPIKey == "" {
			return Config{}, errors.New("FIREBASE_API_KEY is not set")
		}
	case AuthLocal:
	default:
		return Config{}, fmt.Errorf("unknown AUTH_PROVIDER %q", cfg.AuthProvider)
	}

	return cfg, nil
}

// NeedsFirebase reports whether a Firebase app has to be initialised.
func (c Config) NeedsFirebase() bool {
	return c.StoreDriver == StoreFirestore || c.AuthProvider == AuthFirebase
}

func databaseURL(getenv func(string) string) string {
	if url := getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST"), getenv("DB_USER"), getenv("DB_PASSWORD"), getenv("DB_NAME"), withDefault(getenv("DB_PORT"), "5432"),
	)
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
