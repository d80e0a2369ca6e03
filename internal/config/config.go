package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Checkout  CheckoutConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" keeps everything
	// in-process, which is only useful for tests.
	Path string
}

type AuthConfig struct {
	// PIN is the shared operator PIN compared verbatim when PINHash is empty.
	PIN string
	// PINHash, when set, is a bcrypt hash of the PIN and takes precedence.
	PINHash       string
	JWTSecret     string
	SessionExpiry time.Duration
}

// CheckoutConfig decides how strictly the checkout engine polices stock and
// discounts. Both checks are off by default to keep small-store flows fast.
type CheckoutConfig struct {
	// EnforceStock rejects a commit when any line exceeds available stock.
	// Off by default: stock is allowed to go negative.
	EnforceStock bool
	// ClampDiscount rejects a discount larger than the cart subtotal.
	// Off by default: a negative total is accepted.
	ClampDiscount bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	// Requests allowed per Duration seconds, applied per client IP on login.
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pasal-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_PATH", "pasal.db")
	viper.SetDefault("AUTH_PIN", "1234")
	viper.SetDefault("AUTH_PIN_HASH", "")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 12)
	viper.SetDefault("CHECKOUT_ENFORCE_STOCK", false)
	viper.SetDefault("CHECKOUT_CLAMP_DISCOUNT", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Auth: AuthConfig{
			PIN:           viper.GetString("AUTH_PIN"),
			PINHash:       viper.GetString("AUTH_PIN_HASH"),
			JWTSecret:     viper.GetString("JWT_SECRET"),
			SessionExpiry: time.Duration(viper.GetInt("SESSION_EXPIRY_HOURS")) * time.Hour,
		},
		Checkout: CheckoutConfig{
			EnforceStock:  viper.GetBool("CHECKOUT_ENFORCE_STOCK"),
			ClampDiscount: viper.GetBool("CHECKOUT_CLAMP_DISCOUNT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
