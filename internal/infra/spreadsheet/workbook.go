package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/atobones/google-sheets-automation/internal/usecase"
)

// Workbook keeps every sheet in a single xlsx file on disk and satisfies
// usecase.SheetStore. Mutations write through to the file immediately so
// each command observes the previous command's result. A single mutex
// serializes access; the workflow assumes one writer.
type Workbook struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

// Open loads the workbook at path, creating an empty one when the file
// does not exist yet.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
		f = excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create workbook %s: %w", path, err)
		}
	}
	return &Workbook{file: f, path: path}, nil
}

func (w *Workbook) Path() string { return w.path }

func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// Sheet returns the named sheet, creating it when absent.
func (w *Workbook) Sheet(ctx context.Context, name string) (usecase.Sheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("lookup sheet %s: %w", name, err)
	}
	if idx < 0 {
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
		if err := w.file.Save(); err != nil {
			return nil, fmt.Errorf("save workbook: %w", err)
		}
	}
	return &grid{wb: w, name: name}, nil
}

// grid adapts one named sheet to usecase.Sheet. Rows and columns are
// 1-based, as in the host spreadsheet model.
type grid struct {
	wb   *Workbook
	name string
}

func (g *grid) Name() string { return g.name }

func (g *grid) Rows(ctx context.Context) ([][]string, error) {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	rows, err := g.wb.file.GetRows(g.name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", g.name, err)
	}
	return rows, nil
}

func (g *grid) AppendRow(ctx context.Context, row []string) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	rows, err := g.wb.file.GetRows(g.name)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", g.name, err)
	}
	if err := g.writeRowLocked(len(rows)+1, row); err != nil {
		return err
	}
	return g.saveLocked()
}

func (g *grid) WriteRow(ctx context.Context, index int, row []string) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	if err := g.writeRowLocked(index, row); err != nil {
		return err
	}
	return g.saveLocked()
}

func (g *grid) SetCell(ctx context.Context, row, col int, value string) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}
	if err := g.wb.file.SetCellStr(g.name, cell, value); err != nil {
		return fmt.Errorf("write cell %s!%s: %w", g.name, cell, err)
	}
	return g.saveLocked()
}

func (g *grid) DeleteRow(ctx context.Context, index int) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	if err := g.wb.file.RemoveRow(g.name, index); err != nil {
		return fmt.Errorf("delete row %d of %s: %w", index, g.name, err)
	}
	return g.saveLocked()
}

func (g *grid) FreezeHeader(ctx context.Context) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	err := g.wb.file.SetPanes(g.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("freeze header of %s: %w", g.name, err)
	}
	return g.saveLocked()
}

// AutoSizeColumns widens each column to fit its longest cell. Excelize
// has no host-side autofit, so widths are computed from cell lengths.
func (g *grid) AutoSizeColumns(ctx context.Context) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	rows, err := g.wb.file.GetRows(g.name)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", g.name, err)
	}
	widths := make(map[int]int)
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		w := float64(width) + 2
		if w < 10 {
			w = 10
		}
		if w > 60 {
			w = 60
		}
		if err := g.wb.file.SetColWidth(g.name, col, col, w); err != nil {
			return fmt.Errorf("size column %s of %s: %w", col, g.name, err)
		}
	}
	return g.saveLocked()
}

func (g *grid) Clear(ctx context.Context) error {
	g.wb.mu.Lock()
	defer g.wb.mu.Unlock()
	rows, err := g.wb.file.GetRows(g.name)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", g.name, err)
	}
	for i := len(rows); i >= 1; i-- {
		if err := g.wb.file.RemoveRow(g.name, i); err != nil {
			return fmt.Errorf("clear row %d of %s: %w", i, g.name, err)
		}
	}
	return g.saveLocked()
}

func (g *grid) writeRowLocked(index int, row []string) error {
	cell, err := excelize.CoordinatesToCellName(1, index)
	if err != nil {
		return fmt.Errorf("row %d: %w", index, err)
	}
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	if err := g.wb.file.SetSheetRow(g.name, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", index, g.name, err)
	}
	return nil
}

func (g *grid) saveLocked() error {
	if err := g.wb.file.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
