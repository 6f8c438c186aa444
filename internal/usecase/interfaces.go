package usecase

import "context"

// SheetStore is the workbook: a set of named tabular sheets. Sheet is
// get-or-create, so callers never observe a missing sheet.
type SheetStore interface {
	Sheet(ctx context.Context, name string) (Sheet, error)
}

// Sheet is one 2-D grid of cells. Row and column indices are 1-based,
// matching how spreadsheet hosts address cells. Rows returns the used
// range; trailing blank cells may be trimmed from each row.
type Sheet interface {
	Name() string
	Rows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	WriteRow(ctx context.Context, index int, row []string) error
	SetCell(ctx context.Context, row, col int, value string) error
	DeleteRow(ctx context.Context, index int) error
	FreezeHeader(ctx context.Context) error
	AutoSizeColumns(ctx context.Context) error
	Clear(ctx context.Context) error
}

// ActivityRecorder appends one audit row per mutating operation.
type ActivityRecorder interface {
	Record(ctx context.Context, action, details string) error
}
