package usecase

import "context"

// fakeStore is an in-memory SheetStore so use case tests run without a
// real workbook behind them.
type fakeStore struct {
	sheets map[string]*fakeSheet
}

func newFakeStore() *fakeStore {
	return &fakeStore{sheets: make(map[string]*fakeSheet)}
}

func (s *fakeStore) Sheet(ctx context.Context, name string) (Sheet, error) {
	if sh, ok := s.sheets[name]; ok {
		return sh, nil
	}
	sh := &fakeSheet{name: name}
	s.sheets[name] = sh
	return sh, nil
}

// get returns the sheet without creating it; nil when absent.
func (s *fakeStore) get(name string) *fakeSheet {
	return s.sheets[name]
}

type fakeSheet struct {
	name   string
	rows   [][]string
	frozen bool
	sized  bool
}

func (f *fakeSheet) Name() string { return f.name }

func (f *fakeSheet) Rows(ctx context.Context) ([][]string, error) {
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeSheet) AppendRow(ctx context.Context, row []string) error {
	f.rows = append(f.rows, append([]string(nil), row...))
	return nil
}

func (f *fakeSheet) WriteRow(ctx context.Context, index int, row []string) error {
	f.grow(index)
	f.rows[index-1] = append([]string(nil), row...)
	return nil
}

func (f *fakeSheet) SetCell(ctx context.Context, row, col int, value string) error {
	f.grow(row)
	for len(f.rows[row-1]) < col {
		f.rows[row-1] = append(f.rows[row-1], "")
	}
	f.rows[row-1][col-1] = value
	return nil
}

func (f *fakeSheet) DeleteRow(ctx context.Context, index int) error {
	f.rows = append(f.rows[:index-1], f.rows[index:]...)
	return nil
}

func (f *fakeSheet) FreezeHeader(ctx context.Context) error {
	f.frozen = true
	return nil
}

func (f *fakeSheet) AutoSizeColumns(ctx context.Context) error {
	f.sized = true
	return nil
}

func (f *fakeSheet) Clear(ctx context.Context) error {
	f.rows = nil
	return nil
}

func (f *fakeSheet) grow(index int) {
	for len(f.rows) < index {
		f.rows = append(f.rows, nil)
	}
}
