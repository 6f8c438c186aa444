package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

// SchemaManager guarantees sheets exist and carry their header row. It
// never repairs a header that already has content: schema drift is a
// documented limitation, not something to silently rewrite.
type SchemaManager struct {
	Store    SheetStore
	Settings Settings
}

func NewSchemaManager(store SheetStore, settings Settings) *SchemaManager {
	return &SchemaManager{Store: store, Settings: settings}
}

// EnsureSheet returns the sheet named name, creating it when absent.
func (m *SchemaManager) EnsureSheet(ctx context.Context, name string) (Sheet, error) {
	return m.Store.Sheet(ctx, name)
}

// EnsureHeaders writes columns as the frozen header row iff the sheet
// has zero rows or a first row whose every cell is blank.
func (m *SchemaManager) EnsureHeaders(ctx context.Context, sheet Sheet, columns []string) error {
	rows, err := sheet.Rows(ctx)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheet.Name(), err)
	}
	if !headerMissing(rows) {
		return nil
	}
	if err := sheet.WriteRow(ctx, 1, columns); err != nil {
		return fmt.Errorf("write header of %s: %w", sheet.Name(), err)
	}
	if err := sheet.FreezeHeader(ctx); err != nil {
		return fmt.Errorf("freeze header of %s: %w", sheet.Name(), err)
	}
	return sheet.AutoSizeColumns(ctx)
}

// Bootstrap makes sure the Leads and Logs sheets exist with headers.
// Idempotent; existing data is never touched.
func (m *SchemaManager) Bootstrap(ctx context.Context) error {
	leads, err := m.EnsureSheet(ctx, m.Settings.LeadsSheet)
	if err != nil {
		return err
	}
	if err := m.EnsureHeaders(ctx, leads, entity.LeadColumns()); err != nil {
		return err
	}
	logs, err := m.EnsureSheet(ctx, m.Settings.LogsSheet)
	if err != nil {
		return err
	}
	return m.EnsureHeaders(ctx, logs, entity.LogColumns())
}

func headerMissing(rows [][]string) bool {
	if len(rows) == 0 {
		return true
	}
	for _, cell := range rows[0] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// SetupSheetsUseCase is the menu's "Setup sheets" command.
type SetupSheetsUseCase struct {
	Schema *SchemaManager
	Log    ActivityRecorder
}

func NewSetupSheetsUseCase(schema *SchemaManager, log ActivityRecorder) *SetupSheetsUseCase {
	return &SetupSheetsUseCase{Schema: schema, Log: log}
}

func (uc *SetupSheetsUseCase) Execute(ctx context.Context) error {
	if err := uc.Schema.Bootstrap(ctx); err != nil {
		return err
	}
	details := fmt.Sprintf("sheets=%s,%s", uc.Schema.Settings.LeadsSheet, uc.Schema.Settings.LogsSheet)
	return uc.Log.Record(ctx, entity.ActionSetup, details)
}
