package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret signs reviewer bearer tokens; JWTExpiryDuration bounds them.
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// FieldEncryptionKey is the hex-encoded 256-bit key protecting sensitive
	// application fields. Its absence or a wrong size is a startup failure.
	FieldEncryptionKey string

	// ProgramTag prefixes generated reference numbers.
	ProgramTag string

	// IntakeRateLimit is a ulule/limiter formatted rate ("20-M" = 20/minute)
	// applied to the public intake routes.
	IntakeRateLimit string

	// CORSAllowedOrigins for the public intake form.
	CORSAllowedOrigins []string

	// Outbound notification (SMTP). Empty host disables delivery.
	SMTPHost        string
	SMTPPort        string
	SMTPFrom        string
	ReviewInboxAddr string

	// Google SSO for reviewers; empty client ID disables the flow.
	GoogleClientID string

	// Posthog product analytics; empty key disables it.
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and a .env file if
// present. Only the field encryption key is hard-required here; everything
// else degrades with a logged warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "client-onboarding-app")
	viper.SetDefault("FIELD_ENCRYPTION_KEY", "")
	viper.SetDefault("PROGRAM_TAG", "MFS")
	viper.SetDefault("INTAKE_RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_FROM", "onboarding@meridianfs.example")
	viper.SetDefault("REVIEW_INBOX_ADDR", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	// No fallback here: an unset or mis-sized key must stop the process before
	// it accepts a single submission. Size is enforced by fieldcrypt.New.
	cfg.FieldEncryptionKey = viper.GetString("FIELD_ENCRYPTION_KEY")
	if cfg.FieldEncryptionKey == "" {
		return nil, fmt.Errorf("FIELD_ENCRYPTION_KEY must be set to a hex-encoded 256-bit key")
	}

	cfg.ProgramTag = viper.GetString("PROGRAM_TAG")
	cfg.IntakeRateLimit = viper.GetString("INTAKE_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	cfg.ReviewInboxAddr = viper.GetString("REVIEW_INBOX_ADDR")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Outbound notifications will be logged, not delivered.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google SSO login will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
