package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "leads.xlsx", cfg.WorkbookPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "Leads", cfg.Workflow.LeadsSheet)
	assert.Equal(t, "Logs", cfg.Workflow.LogsSheet)
	assert.Equal(t, "Archive", cfg.Workflow.ArchiveSheet)
	assert.Equal(t, time.UTC, cfg.Workflow.Location)
	assert.Equal(t, 7*24*time.Hour, cfg.Workflow.ReportWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.Workflow.ArchiveAge)
	assert.Zero(t, cfg.ArchiveInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKBOOK_PATH", "/data/crm.xlsx")
	t.Setenv("LEADS_SHEET", "Inbound")
	t.Setenv("LEAD_TIMEZONE", "Europe/Berlin")
	t.Setenv("ARCHIVE_INTERVAL", "12h")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/data/crm.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "Inbound", cfg.Workflow.LeadsSheet)
	assert.Equal(t, "Europe/Berlin", cfg.Workflow.Location.String())
	assert.Equal(t, 12*time.Hour, cfg.ArchiveInterval)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Setenv("LEAD_TIMEZONE", "Mars/Olympus")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("ARCHIVE_INTERVAL", "often")

	_, err := Load()

	assert.Error(t, err)
}
