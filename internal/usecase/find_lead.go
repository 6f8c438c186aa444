package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// FindLeadUseCase is the read-only lookup behind GET /leads/{id}.
type FindLeadUseCase struct {
	Schema *SchemaManager
}

func NewFindLeadUseCase(schema *SchemaManager) *FindLeadUseCase {
	return &FindLeadUseCase{Schema: schema}
}

func (uc *FindLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "is required"}
	}
	sheet, err := uc.Schema.EnsureSheet(ctx, uc.Schema.Settings.LeadsSheet)
	if err != nil {
		return nil, err
	}
	rows, err := sheet.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read leads: %w", err)
	}
	if len(rows) < 2 {
		return nil, &NotFoundError{ID: id}
	}
	header := rows[0]
	idCol := entity.ColumnIndex(header, entity.ColID)
	if idCol < 0 {
		return nil, &SchemaError{Sheet: sheet.Name(), Message: "header is missing " + entity.ColID}
	}
	for _, row := range rows[1:] {
		if entity.CellAt(row, idCol) == id {
			return entity.LeadFromRow(header, row), nil
		}
	}
	return nil, &NotFoundError{ID: id}
}
