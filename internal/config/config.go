package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/atobones/google-sheets-automation/internal/usecase"
)

// Config is the application configuration, resolved once at startup
// from the environment (a .env file is honored when present) and passed
// down as an immutable value.
type Config struct {
	// WorkbookPath is the xlsx file backing all sheets.
	WorkbookPath string

	// HTTPAddr is the listen address of the lead API.
	HTTPAddr string

	// AllowedOrigins feeds the CORS middleware.
	AllowedOrigins []string

	// ArchiveInterval enables the periodic archive worker when > 0.
	ArchiveInterval time.Duration

	// Workflow carries the sheet names, time zone and windows used by
	// every use case.
	Workflow usecase.Settings
}

// Load reads the environment. Every variable has a default, so an empty
// environment yields a working local setup.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		WorkbookPath:   getenv("WORKBOOK_PATH", "leads.xlsx"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "*"), ","),
		Workflow:       usecase.DefaultSettings(),
	}

	cfg.Workflow.LeadsSheet = getenv("LEADS_SHEET", cfg.Workflow.LeadsSheet)
	cfg.Workflow.LogsSheet = getenv("LOGS_SHEET", cfg.Workflow.LogsSheet)
	cfg.Workflow.ArchiveSheet = getenv("ARCHIVE_SHEET", cfg.Workflow.ArchiveSheet)

	tz := getenv("LEAD_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAD_TIMEZONE %q: %w", tz, err)
	}
	cfg.Workflow.Location = loc

	if v := os.Getenv("ARCHIVE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ARCHIVE_INTERVAL %q: %w", v, err)
		}
		cfg.ArchiveInterval = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
