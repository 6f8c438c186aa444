package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// AddLeadUseCase captures a new lead into the Leads sheet. Field content
// is taken as-is; every field is optional and the source defaults to
// "manual". The new row always starts in NEW with both timestamps set
// to the same instant.
type AddLeadUseCase struct {
	Schema *SchemaManager
	Log    ActivityRecorder
	Now    func() time.Time
}

func NewAddLeadUseCase(schema *SchemaManager, log ActivityRecorder) *AddLeadUseCase {
	return &AddLeadUseCase{Schema: schema, Log: log, Now: time.Now}
}

func (uc *AddLeadUseCase) Execute(ctx context.Context, input AddLeadInput) (*AddLeadOutput, error) {
	if err := uc.Schema.Bootstrap(ctx); err != nil {
		return nil, err
	}
	sheet, err := uc.Schema.EnsureSheet(ctx, uc.Schema.Settings.LeadsSheet)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	source := input.Source
	if source == "" {
		source = entity.DefaultSource
	}
	lead := entity.Lead{
		ID:         NewLeadID(now, uc.Schema.Settings.Location),
		CreatedAt:  now,
		Name:       input.Name,
		Phone:      input.Phone,
		Source:     source,
		Message:    input.Message,
		Assignee:   input.Assignee,
		Status:     entity.StatusNew,
		LastUpdate: now,
	}
	if err := sheet.AppendRow(ctx, lead.Row()); err != nil {
		return nil, fmt.Errorf("append lead: %w", err)
	}

	details := fmt.Sprintf("id=%s source=%s assignee=%s", lead.ID, lead.Source, lead.Assignee)
	if err := uc.Log.Record(ctx, entity.ActionAddLead, details); err != nil {
		return nil, err
	}
	return &AddLeadOutput{ID: lead.ID}, nil
}
