package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// ArchiveDoneLeadsUseCase relocates aged DONE leads into the Archive
// sheet. Rows are copied verbatim (every column, whatever the current
// header carries) and then removed from the Leads sheet; leads are
// moved, never duplicated or hard-deleted.
type ArchiveDoneLeadsUseCase struct {
	Schema *SchemaManager
	Log    ActivityRecorder
	Now    func() time.Time
}

func NewArchiveDoneLeadsUseCase(schema *SchemaManager, log ActivityRecorder) *ArchiveDoneLeadsUseCase {
	return &ArchiveDoneLeadsUseCase{Schema: schema, Log: log, Now: time.Now}
}

func (uc *ArchiveDoneLeadsUseCase) Execute(ctx context.Context) (*ArchiveOutput, error) {
	settings := uc.Schema.Settings
	leads, err := uc.Schema.EnsureSheet(ctx, settings.LeadsSheet)
	if err != nil {
		return nil, err
	}
	rows, err := leads.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read leads: %w", err)
	}
	if len(rows) < 2 {
		return &ArchiveOutput{Skipped: true}, nil
	}

	header := rows[0]
	statusCol := entity.ColumnIndex(header, entity.ColStatus)
	createdCol := entity.ColumnIndex(header, entity.ColCreatedAt)
	if statusCol < 0 || createdCol < 0 {
		return nil, &SchemaError{
			Sheet:   leads.Name(),
			Message: fmt.Sprintf("header is missing %s or %s", entity.ColStatus, entity.ColCreatedAt),
		}
	}

	archive, err := uc.Schema.EnsureSheet(ctx, settings.ArchiveSheet)
	if err != nil {
		return nil, err
	}
	// The archive mirrors the live header verbatim at archive time.
	if err := uc.Schema.EnsureHeaders(ctx, archive, header); err != nil {
		return nil, err
	}

	cutoff := uc.Now().Add(-settings.ArchiveAge)
	var selected [][]string
	var indices []int // 1-based sheet row indices
	for i, row := range rows[1:] {
		if entity.CellAt(row, statusCol) != entity.StatusDone {
			continue
		}
		created, ok := entity.ParseTimestamp(entity.CellAt(row, createdCol))
		if !ok || !created.Before(cutoff) {
			continue
		}
		selected = append(selected, row)
		indices = append(indices, i+2)
	}
	if len(selected) == 0 {
		return &ArchiveOutput{Archived: 0}, nil
	}

	for _, row := range selected {
		if err := archive.AppendRow(ctx, row); err != nil {
			return nil, fmt.Errorf("append to archive: %w", err)
		}
	}
	// Delete bottom-up so pending indices are not shifted by earlier
	// deletions.
	for i := len(indices) - 1; i >= 0; i-- {
		if err := leads.DeleteRow(ctx, indices[i]); err != nil {
			return nil, fmt.Errorf("delete lead row %d: %w", indices[i], err)
		}
	}

	details := fmt.Sprintf("archived=%d cutoff=%s", len(selected), cutoff.Format(entity.TimestampLayout))
	if err := uc.Log.Record(ctx, entity.ActionArchive, details); err != nil {
		return nil, err
	}
	return &ArchiveOutput{Archived: len(selected)}, nil
}
