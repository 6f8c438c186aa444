package entity

import (
	"strings"
	"time"
)

// Lead statuses. Any status can be reached from any other; the workflow
// does not enforce an ordering of transitions.
const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusClosed     = "CLOSED"
)

// DefaultSource is assigned when a lead is captured without a source.
const DefaultSource = "manual"

// TimestampLayout is how timestamps are written into sheet cells.
const TimestampLayout = time.RFC3339

// Statuses returns the fixed status set in workflow order.
func Statuses() []string {
	return []string{StatusNew, StatusInProgress, StatusDone, StatusClosed}
}

// IsValidStatus reports whether s is a member of the fixed status set.
func IsValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusClosed:
		return true
	}
	return false
}

type Lead struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Source     string    `json:"source"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"` // NEW, IN_PROGRESS, DONE, CLOSED
	Assignee   string    `json:"assignee,omitempty"`
	LastUpdate time.Time `json:"last_update"`
}

// Row renders the lead as a sheet row in LeadColumns order.
func (l *Lead) Row() []string {
	return []string{
		l.ID,
		l.CreatedAt.Format(TimestampLayout),
		l.Name,
		l.Phone,
		l.Source,
		l.Message,
		l.Status,
		l.Assignee,
		l.LastUpdate.Format(TimestampLayout),
	}
}

// Column names of the Leads sheet header row.
const (
	ColID         = "ID"
	ColCreatedAt  = "CreatedAt"
	ColName       = "Name"
	ColPhone      = "Phone"
	ColSource     = "Source"
	ColMessage    = "Message"
	ColStatus     = "Status"
	ColAssignee   = "Assignee"
	ColLastUpdate = "LastUpdate"
)

// LeadColumns is the expected Leads header row.
func LeadColumns() []string {
	return []string{
		ColID, ColCreatedAt, ColName, ColPhone, ColSource,
		ColMessage, ColStatus, ColAssignee, ColLastUpdate,
	}
}

// LeadFromRow decodes a sheet row using the column positions found in
// header. Cells beyond the row's length read as empty, matching how the
// spreadsheet store trims trailing blanks.
func LeadFromRow(header, row []string) *Lead {
	lead := &Lead{
		ID:       CellAt(row, ColumnIndex(header, ColID)),
		Name:     CellAt(row, ColumnIndex(header, ColName)),
		Phone:    CellAt(row, ColumnIndex(header, ColPhone)),
		Source:   CellAt(row, ColumnIndex(header, ColSource)),
		Message:  CellAt(row, ColumnIndex(header, ColMessage)),
		Status:   CellAt(row, ColumnIndex(header, ColStatus)),
		Assignee: CellAt(row, ColumnIndex(header, ColAssignee)),
	}
	if t, ok := ParseTimestamp(CellAt(row, ColumnIndex(header, ColCreatedAt))); ok {
		lead.CreatedAt = t
	}
	if t, ok := ParseTimestamp(CellAt(row, ColumnIndex(header, ColLastUpdate))); ok {
		lead.LastUpdate = t
	}
	return lead
}

// ColumnIndex finds the zero-based position of name in header, or -1.
func ColumnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// CellAt returns row[i], tolerating short rows and a -1 index.
func CellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// ParseTimestamp accepts the layouts a spreadsheet cell realistically
// carries for our timestamps.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
