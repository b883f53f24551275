package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the process needs; main loads it once and
// passes it down. Nothing in the app reads the environment directly.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AdminEmail        string `env:"ADMIN_EMAIL,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	SessionSecret string `env:"SESSION_SECRET,required"`

	FirebaseAPIKey          string `env:"FIREBASE_API_KEY,required"`
	FirebaseAuthDomain      string `env:"FIREBASE_AUTH_DOMAIN"`
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID,required"`
	FirebaseDatabaseURL     string `env:"FIREBASE_DATABASE_URL,required"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON,required"`

	// StaticRoot is where uploaded images land; served under /static.
	StaticRoot string `env:"STATIC_ROOT" envDefault:"static"`
	BackupRoot string `env:"BACKUP_ROOT" envDefault:"backup/static"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
