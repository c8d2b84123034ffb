package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig collects everything the server needs from the environment.
type AppConfig struct {
	ListenAddr             string
	Port                   string
	DatabasePath           string
	SessionSecret          string
	GinMode                string
	AllowedOrigins         []string
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	ContactRecipient       string
	StorageBucket          string
	StorageCredentialsFile string
	LogLevel               string
	SentryDSN              string
	Environment            string
}

// Load reads the application configuration from environment variables,
// providing safe defaults for missing values.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "portfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	smtpHost := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			smtpPort = parsed
		}
	}

	smtpUsername := strings.TrimSpace(os.Getenv("EMAIL_USER"))
	smtpPassword := strings.TrimSpace(os.Getenv("EMAIL_PASS"))

	// Contact submissions go to the sending account when no separate
	// recipient is configured.
	contactRecipient := strings.TrimSpace(os.Getenv("CONTACT_RECIPIENT"))
	if contactRecipient == "" {
		contactRecipient = smtpUsername
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return AppConfig{
		ListenAddr:             listenAddr,
		Port:                   port,
		DatabasePath:           databasePath,
		SessionSecret:          sessionSecret,
		GinMode:                ginMode,
		AllowedOrigins:         splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		SMTPHost:               smtpHost,
		SMTPPort:               smtpPort,
		SMTPUsername:           smtpUsername,
		SMTPPassword:           smtpPassword,
		ContactRecipient:       contactRecipient,
		StorageBucket:          strings.TrimSpace(os.Getenv("STORAGE_BUCKET")),
		StorageCredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		LogLevel:               logLevel,
		SentryDSN:              strings.TrimSpace(os.Getenv("SENTRY_DSN")),
		Environment:            strings.TrimSpace(os.Getenv("ENV")),
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
