package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// MinJWTSecretLength is the minimum required length for the token signing
// secret. HS256 keys shorter than the hash output weaken the signature.
const MinJWTSecretLength = 32

// Config holds the application configuration loaded from environment
// variables. It is constructed once at process entry and passed explicitly
// to constructors; nothing reads the environment after Load returns.
type Config struct {
	Port     int    `env:"PORT" envDefault:"5000"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"structura"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	JWTExpiry  time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	UploadDir       string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadURLPrefix string `env:"UPLOAD_URL_PREFIX" envDefault:"/uploads"`
	MaxUploadBytes  int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"100"`

	// FormRatePerMinute limits unauthenticated form posts (contact,
	// newsletter) per client IP.
	FormRatePerMinute int `env:"FORM_RATE_PER_MINUTE" envDefault:"10"`
}

// IsDevelopment returns true when running in development mode. Error
// responses include detail only in this mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the listen address in :port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load parses environment variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes long, got %d; "+
			"generate one with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE %d outside [1, %d]", cfg.DefaultPageSize, cfg.MaxPageSize)
	}

	return cfg, nil
}
