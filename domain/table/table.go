package table

import (
	"math"
	"strconv"
	"strings"
)

// numericSampleSize caps how many leading values are inspected when
// classifying a column as numeric.
const numericSampleSize = 10

// Table is the in-memory representation of an uploaded dataset. Headers keep
// their upload order; every row has exactly len(Headers) cells. A Table is
// never mutated after Parse returns it.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ColumnType classifies a column for parameter auto-fill and method dispatch
type ColumnType string

const (
	ColumnNumeric ColumnType = "numeric"
	ColumnText    ColumnType = "text"
)

// Parse converts a raw comma-separated text blob into a Table. The first
// non-blank line is the header row; remaining non-blank lines are data rows.
// Cells and headers are trimmed of surrounding whitespace. There is no
// quoting or escaping support.
//
// Rows shorter than the header row are padded with empty cells; longer rows
// are truncated. This resolves the undefined-length-mismatch behavior of the
// original prototype in favor of keeping every data line.
func Parse(raw string) (*Table, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	headers := splitCells(lines[0])
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitCells(line)
		rows = append(rows, normalizeRow(cells, len(headers)))
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// ColumnIndex returns the position of a header, or -1 if absent
func (t *Table) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// Column returns the raw string values of a column in row order.
// An unknown header yields nil.
func (t *Table) Column(header string) []string {
	idx := t.ColumnIndex(header)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// NumericColumn returns the parsed float values of a column. Cells that do
// not parse are skipped, so the result may be shorter than RowCount.
func (t *Table) NumericColumn(header string) []float64 {
	raw := t.Column(header)
	values := make([]float64, 0, len(raw))
	for _, cell := range raw {
		if v, ok := parseFinite(cell); ok {
			values = append(values, v)
		}
	}
	return values
}

// NumericColumns returns the headers whose first min(10, rowCount) values all
// parse as finite numbers, in header order. An empty table has no numeric
// columns; the vacuous "all values numeric" reading is deliberately rejected.
func (t *Table) NumericColumns() []string {
	if t.RowCount() == 0 {
		return []string{}
	}

	sample := t.RowCount()
	if sample > numericSampleSize {
		sample = numericSampleSize
	}

	numeric := make([]string, 0, len(t.Headers))
	for i, header := range t.Headers {
		if t.columnIsNumeric(i, sample) {
			numeric = append(numeric, header)
		}
	}
	return numeric
}

// ClassifyColumn reports the inferred type of a single column
func (t *Table) ClassifyColumn(header string) ColumnType {
	for _, h := range t.NumericColumns() {
		if h == header {
			return ColumnNumeric
		}
	}
	return ColumnText
}

func (t *Table) columnIsNumeric(idx, sample int) bool {
	for i := 0; i < sample; i++ {
		if _, ok := parseFinite(t.Rows[i][idx]); !ok {
			return false
		}
	}
	return true
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func splitCells(line string) []string {
	parts := strings.Split(line, ",")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func normalizeRow(cells []string, width int) []string {
	if len(cells) == width {
		return cells
	}
	if len(cells) > width {
		return cells[:width]
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}

func parseFinite(cell string) (float64, bool) {
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	// ParseFloat accepts "Inf" and "NaN" spellings; neither is tabular data
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
