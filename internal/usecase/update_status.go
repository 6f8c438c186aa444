package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// UpdateLeadStatusUseCase moves one lead to a new workflow status. The
// Leads sheet is scanned top to bottom and the first row whose ID cell
// matches is mutated in place: Status and LastUpdate only, no
// reordering, no other columns touched.
type UpdateLeadStatusUseCase struct {
	Schema *SchemaManager
	Log    ActivityRecorder
	Now    func() time.Time
}

func NewUpdateLeadStatusUseCase(schema *SchemaManager, log ActivityRecorder) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Schema: schema, Log: log, Now: time.Now}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) error {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if !entity.IsValidStatus(input.Status) {
		return &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of %s", strings.Join(entity.Statuses(), ", ")),
		}
	}

	sheet, err := uc.Schema.EnsureSheet(ctx, uc.Schema.Settings.LeadsSheet)
	if err != nil {
		return err
	}
	rows, err := sheet.Rows(ctx)
	if err != nil {
		return fmt.Errorf("read leads: %w", err)
	}
	if len(rows) < 2 {
		return &SchemaError{Sheet: sheet.Name(), Message: "no lead rows; run setup and add a lead first"}
	}

	header := rows[0]
	idCol := entity.ColumnIndex(header, entity.ColID)
	statusCol := entity.ColumnIndex(header, entity.ColStatus)
	updateCol := entity.ColumnIndex(header, entity.ColLastUpdate)
	if idCol < 0 || statusCol < 0 || updateCol < 0 {
		return &SchemaError{
			Sheet:   sheet.Name(),
			Message: fmt.Sprintf("header is missing one of %s, %s, %s", entity.ColID, entity.ColStatus, entity.ColLastUpdate),
		}
	}

	for i, row := range rows[1:] {
		if entity.CellAt(row, idCol) != id {
			continue
		}
		rowIndex := i + 2 // 1-based, skipping the header
		if err := sheet.SetCell(ctx, rowIndex, statusCol+1, input.Status); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
		stamp := uc.Now().Format(entity.TimestampLayout)
		if err := sheet.SetCell(ctx, rowIndex, updateCol+1, stamp); err != nil {
			return fmt.Errorf("write last update: %w", err)
		}
		details := fmt.Sprintf("id=%s status=%s", id, input.Status)
		return uc.Log.Record(ctx, entity.ActionUpdateStatus, details)
	}

	return &NotFoundError{ID: id}
}
