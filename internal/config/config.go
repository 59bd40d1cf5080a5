package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds all process-wide settings. It is loaded once at startup and
// never mutated afterwards; credentials live here, never in handlers.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	JWTSecret string
	// TokenTTL applies to every issued bearer token. The lifetime is one
	// knob on purpose: issuing endpoints must not hard-code their own.
	TokenTTL time.Duration
	// OTPTTL is the validity window of verification and reset codes.
	OTPTTL time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/pizzapie?parseTime=true"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:  getDuration("TOKEN_TTL", time.Hour),
		OTPTTL:    getDuration("OTP_TTL", 5*time.Minute),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "Pizza Pie <noreply@pizzapie.example>"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v, "fallback", fallback)
		return fallback
	}
	return d
}
