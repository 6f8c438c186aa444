package usecase

import (
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// Settings is the immutable workflow configuration handed to every use
// case at construction. Zero values are filled in by DefaultSettings.
type Settings struct {
	LeadsSheet   string
	LogsSheet    string
	ArchiveSheet string

	// Location drives the date part of lead IDs and report names.
	Location *time.Location

	// ReportWindow is the rolling window of generateWeeklyReport.
	ReportWindow time.Duration

	// ArchiveAge is how old a DONE lead must be before archiving.
	ArchiveAge time.Duration
}

// DefaultSettings returns the stock sheet names and the 7-day windows.
func DefaultSettings() Settings {
	return Settings{
		LeadsSheet:   "Leads",
		LogsSheet:    "Logs",
		ArchiveSheet: "Archive",
		Location:     time.UTC,
		ReportWindow: 7 * 24 * time.Hour,
		ArchiveAge:   7 * 24 * time.Hour,
	}
}

type AddLeadInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Source   string `json:"source"`
	Message  string `json:"message"`
	Assignee string `json:"assignee"`
}

type AddLeadOutput struct {
	ID string `json:"id"`
}

type UpdateStatusInput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ReportOutput describes one weekly report run. Skipped is set when the
// Leads sheet had no data rows and nothing was written.
type ReportOutput struct {
	Skipped   bool                 `json:"skipped"`
	SheetName string               `json:"sheet_name,omitempty"`
	From      time.Time            `json:"from"`
	To        time.Time            `json:"to"`
	Counts    []entity.StatusCount `json:"counts,omitempty"`
}

// ArchiveOutput describes one archive run. Skipped means the Leads sheet
// had no data rows; Archived is zero when nothing matched the cutoff.
type ArchiveOutput struct {
	Skipped  bool `json:"skipped"`
	Archived int  `json:"archived"`
}
