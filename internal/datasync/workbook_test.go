package datasync

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/reclamegraag/examiner/internal/wordset"
)

func newWorkbook(t *testing.T, sheet string, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		for j, value := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook(t *testing.T) {
	rows := [][]string{
		{"Nederlands", "Engels", "Notitie"},
		{"hond", "dog", "dier"},
		{" kat ", "cat"},
		{"", "bird"},
		{"vis"},
	}

	tests := []struct {
		name    string
		sheet   string
		opts    WorkbookOptions
		want    []wordset.WordPair
		wantErr bool
	}{
		{
			name:  "default columns skip the header",
			sheet: "Sheet1",
			opts:  DefaultWorkbookOptions(),
			want: []wordset.WordPair{
				{TermA: "hond", TermB: "dog"},
				{TermA: "kat", TermB: "cat"},
			},
		},
		{
			name:  "custom columns and start row",
			sheet: "Sheet1",
			opts:  WorkbookOptions{ColumnA: "C", ColumnB: "A", StartRow: 1},
			want: []wordset.WordPair{
				{TermA: "Notitie", TermB: "Nederlands"},
				{TermA: "dier", TermB: "hond"},
			},
		},
		{
			name:    "missing sheet",
			sheet:   "Sheet1",
			opts:    WorkbookOptions{SheetName: "Woorden", ColumnA: "A", ColumnB: "B", StartRow: 1},
			wantErr: true,
		},
		{
			name:    "invalid column",
			sheet:   "Sheet1",
			opts:    WorkbookOptions{ColumnA: "1", ColumnB: "B"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWorkbook(newWorkbook(t, tt.sheet, rows), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
