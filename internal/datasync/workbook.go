package datasync

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/reclamegraag/examiner/internal/wordset"
)

// WorkbookOptions selects the cells holding the pairs of a spreadsheet.
type WorkbookOptions struct {
	SheetName string // first sheet when empty
	ColumnA   string
	ColumnB   string
	StartRow  int // 1-based
}

// DefaultWorkbookOptions reads columns A and B of the first sheet below a header row.
func DefaultWorkbookOptions() WorkbookOptions {
	return WorkbookOptions{
		ColumnA:  "A",
		ColumnB:  "B",
		StartRow: 2,
	}
}

// ReadWorkbook reads word pairs from an xlsx workbook. Rows with an empty cell are skipped.
func ReadWorkbook(r io.Reader, opts WorkbookOptions) ([]wordset.WordPair, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader() > %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := opts.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	colA, err := excelize.ColumnNameToNumber(opts.ColumnA)
	if err != nil {
		return nil, fmt.Errorf("excelize.ColumnNameToNumber(%s) > %w", opts.ColumnA, err)
	}
	colB, err := excelize.ColumnNameToNumber(opts.ColumnB)
	if err != nil {
		return nil, fmt.Errorf("excelize.ColumnNameToNumber(%s) > %w", opts.ColumnB, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheet, err)
	}

	var pairs []wordset.WordPair
	for i, row := range rows {
		if i < opts.StartRow-1 {
			continue
		}
		termA := cell(row, colA)
		termB := cell(row, colB)
		if termA == "" || termB == "" {
			continue
		}
		pairs = append(pairs, wordset.WordPair{TermA: termA, TermB: termB})
	}
	return pairs, nil
}

func cell(row []string, column int) string {
	if column-1 >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column-1])
}
