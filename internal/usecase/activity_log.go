package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// ActivityLog appends one timestamped audit row to the Logs sheet for
// every mutating operation. Append-only; nothing edits or deletes rows.
type ActivityLog struct {
	Schema *SchemaManager

	// Now is swappable in tests.
	Now func() time.Time
}

func NewActivityLog(schema *SchemaManager) *ActivityLog {
	return &ActivityLog{Schema: schema, Now: time.Now}
}

func (l *ActivityLog) Record(ctx context.Context, action, details string) error {
	if err := l.Schema.Bootstrap(ctx); err != nil {
		return err
	}
	sheet, err := l.Schema.EnsureSheet(ctx, l.Schema.Settings.LogsSheet)
	if err != nil {
		return err
	}
	entry := entity.LogEntry{Timestamp: l.Now(), Action: action, Details: details}
	if err := sheet.AppendRow(ctx, entry.Row()); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}
