package entity

import "time"

// Activity log actions recorded for every mutating operation.
const (
	ActionSetup        = "SETUP_SHEETS"
	ActionAddLead      = "ADD_LEAD"
	ActionUpdateStatus = "UPDATE_STATUS"
	ActionReport       = "WEEKLY_REPORT"
	ActionArchive      = "ARCHIVE_DONE"
)

// LogEntry is one append-only row of the Logs sheet.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

func (e *LogEntry) Row() []string {
	return []string{e.Timestamp.Format(TimestampLayout), e.Action, e.Details}
}

// LogColumns is the expected Logs header row.
func LogColumns() []string {
	return []string{"Timestamp", "Action", "Details"}
}

// StatusCount is one row of a weekly report: how many leads carried a
// status inside the report window.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ReportColumns is the report artifact header row.
func ReportColumns() []string {
	return []string{"Status", "Count (7d)", "From", "To"}
}
