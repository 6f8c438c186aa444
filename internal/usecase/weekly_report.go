package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// WeeklyReportUseCase aggregates lead counts per status over a rolling
// window and writes them to a dated report sheet. Each run fully
// recomputes the report; runs on the same calendar day overwrite the
// same sheet.
type WeeklyReportUseCase struct {
	Schema *SchemaManager
	Log    ActivityRecorder
	Now    func() time.Time
}

func NewWeeklyReportUseCase(schema *SchemaManager, log ActivityRecorder) *WeeklyReportUseCase {
	return &WeeklyReportUseCase{Schema: schema, Log: log, Now: time.Now}
}

func (uc *WeeklyReportUseCase) Execute(ctx context.Context) (*ReportOutput, error) {
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
		return &ReportOutput{Skipped: true}, nil
	}

	header := rows[0]
	createdCol := entity.ColumnIndex(header, entity.ColCreatedAt)
	statusCol := entity.ColumnIndex(header, entity.ColStatus)
	if createdCol < 0 || statusCol < 0 {
		return nil, &SchemaError{
			Sheet:   leads.Name(),
			Message: fmt.Sprintf("header is missing %s or %s", entity.ColCreatedAt, entity.ColStatus),
		}
	}

	to := uc.Now()
	from := to.Add(-settings.ReportWindow)

	// Fixed statuses first so zero counts still appear; statuses outside
	// the enum are counted under their literal cell value.
	counts := make(map[string]int)
	order := entity.Statuses()
	for _, status := range order {
		counts[status] = 0
	}
	matched := 0
	for _, row := range rows[1:] {
		created, ok := entity.ParseTimestamp(entity.CellAt(row, createdCol))
		if !ok {
			continue
		}
		if created.Before(from) || created.After(to) {
			continue
		}
		status := entity.CellAt(row, statusCol)
		if status == "" {
			status = entity.StatusNew
		}
		if _, seen := counts[status]; !seen {
			order = append(order, status)
		}
		counts[status]++
		matched++
	}

	name := "Report_" + to.In(settings.Location).Format("20060102")
	report, err := uc.Schema.EnsureSheet(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := report.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear report: %w", err)
	}
	if err := report.WriteRow(ctx, 1, entity.ReportColumns()); err != nil {
		return nil, fmt.Errorf("write report header: %w", err)
	}
	fromCell := from.Format(entity.TimestampLayout)
	toCell := to.Format(entity.TimestampLayout)
	output := &ReportOutput{SheetName: name, From: from, To: to}
	for i, status := range order {
		row := []string{status, strconv.Itoa(counts[status]), fromCell, toCell}
		if err := report.WriteRow(ctx, i+2, row); err != nil {
			return nil, fmt.Errorf("write report row: %w", err)
		}
		output.Counts = append(output.Counts, entity.StatusCount{Status: status, Count: counts[status]})
	}
	if err := report.FreezeHeader(ctx); err != nil {
		return nil, err
	}
	if err := report.AutoSizeColumns(ctx); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("sheet=%s matched=%d", name, matched)
	if err := uc.Log.Record(ctx, entity.ActionReport, details); err != nil {
		return nil, err
	}
	return output, nil
}
