package spreadsheet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookCreatesFileAndSheets(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.xlsx")

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.Sheet(ctx, "Leads")
	require.NoError(t, err)
	assert.Equal(t, "Leads", sheet.Name())

	rows, err := sheet.Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWorkbookRowRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.Sheet(ctx, "Leads")
	require.NoError(t, err)

	require.NoError(t, sheet.WriteRow(ctx, 1, []string{"ID", "Status"}))
	require.NoError(t, sheet.AppendRow(ctx, []string{"L-1", "NEW"}))
	require.NoError(t, sheet.AppendRow(ctx, []string{"L-2", "DONE"}))

	rows, err := sheet.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"L-1", "NEW"}, rows[1])

	require.NoError(t, sheet.SetCell(ctx, 2, 2, "CLOSED"))
	rows, err = sheet.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", rows[1][1])

	require.NoError(t, sheet.DeleteRow(ctx, 2))
	rows, err = sheet.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"L-2", "DONE"}, rows[1], "later rows shift up after a delete")
}

func TestWorkbookPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.xlsx")

	wb, err := Open(path)
	require.NoError(t, err)
	sheet, err := wb.Sheet(ctx, "Leads")
	require.NoError(t, err)
	require.NoError(t, sheet.AppendRow(ctx, []string{"ID"}))
	require.NoError(t, sheet.AppendRow(ctx, []string{"L-1"}))
	require.NoError(t, wb.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	sheet, err = reopened.Sheet(ctx, "Leads")
	require.NoError(t, err)
	rows, err := sheet.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "L-1", rows[1][0])
}

func TestWorkbookClear(t *testing.T) {
	ctx := context.Background()
	wb, err := Open(filepath.Join(t.TempDir(), "leads.xlsx"))
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.Sheet(ctx, "Report_20260831")
	require.NoError(t, err)
	require.NoError(t, sheet.AppendRow(ctx, []string{"Status", "Count"}))
	require.NoError(t, sheet.AppendRow(ctx, []string{"NEW", "3"}))

	require.NoError(t, sheet.Clear(ctx))

	rows, err := sheet.Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWorkbookHeaderDecorations(t *testing.T) {
	ctx := context.Background()
	wb, err := Open(filepath.Join(t.TempDir(), "leads.xlsx"))
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.Sheet(ctx, "Leads")
	require.NoError(t, err)
	require.NoError(t, sheet.WriteRow(ctx, 1, []string{"ID", "CreatedAt", "Status"}))

	assert.NoError(t, sheet.FreezeHeader(ctx))
	assert.NoError(t, sheet.AutoSizeColumns(ctx))
}
