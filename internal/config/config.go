package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"rahultripathi/resume-screener/internal/models"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Mail    MailConfig
	Sheets  SheetsConfig
	Storage StorageConfig

	// JobProfile is loaded once here and treated as read-only afterwards.
	JobProfile *models.JobProfile
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
}

type MailConfig struct {
	Host     string
	Username string
	Password string

	// FallbackRecipient receives the notification when the resume carries
	// no usable candidate email.
	FallbackRecipient string

	// Timeout bounds each transport attempt, not the whole failover chain.
	Timeout time.Duration
}

// Enabled reports whether SMTP credentials are configured. Without them the
// notifier short-circuits to "not sent".
func (m MailConfig) Enabled() bool {
	return m.Username != "" && m.Password != ""
}

type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	Worksheet       string
}

// Enabled reports whether spreadsheet logging is configured.
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsFile != "" && s.SpreadsheetID != ""
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	apiKey := getEnv("GOOGLE_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY not found in environment")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: apiKey,
		},
		Mail: MailConfig{
			Host:              getEnv("SMTP_HOST", "smtp.gmail.com"),
			Username:          getEnv("GMAIL_EMAIL", ""),
			Password:          getEnv("GMAIL_APP_PASSWORD", ""),
			FallbackRecipient: getEnv("HR_EMAIL", "rahultripathi2k4151@gmail.com"),
			Timeout:           getEnvAsDuration("SMTP_TIMEOUT", "10s"),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnv("GOOGLE_SHEETS_CREDENTIALS_FILE", ""),
			SpreadsheetID:   getEnv("GOOGLE_SHEET_ID", ""),
			Worksheet:       getEnv("GOOGLE_SHEET_TAB", "Sheet1"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}

	if !cfg.Mail.Enabled() {
		log.Println("⚠️ Warning: Gmail credentials not configured. Email notifications will be disabled.")
	}

	profile, err := loadJobProfile(getEnv("JOB_REQUIREMENTS_FILE", ""))
	if err != nil {
		return nil, err
	}
	cfg.JobProfile = profile

	return cfg, nil
}

// loadJobProfile reads the requirements file when one is configured and
// falls back to the built-in profile otherwise.
func loadJobProfile(path string) (*models.JobProfile, error) {
	if path == "" {
		return models.DefaultJobProfile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job requirements file %s: %w", path, err)
	}

	var profile models.JobProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid JSON in job requirements file %s: %w", path, err)
	}

	if profile.JobTitle == "" {
		profile.JobTitle = "Software Developer"
	}
	if profile.MinimumExperienceYears == 0 {
		profile.MinimumExperienceYears = 2
	}
	if profile.RequiredEducation == "" {
		profile.RequiredEducation = "Bachelor's Degree"
	}

	return &profile, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
