// Package excel adapts uploaded files into the domain Table. CSV uploads go
// through the delimiter-naive domain parser; Excel workbooks are read with
// excelize from their first sheet.
package excel

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"coanalyst/domain/table"
	apperrors "coanalyst/internal/errors"
	"coanalyst/ports"
)

// DataReader turns uploaded CSV or Excel bytes into a Table
type DataReader struct{}

// NewDataReader creates a reader that handles both CSV and Excel uploads
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadTable dispatches on the filename extension. Anything other than .csv or
// .xlsx is rejected at this boundary.
func (r *DataReader) ReadTable(filename string, data []byte) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return r.readCSV(filename, data)
	case ".xlsx":
		return r.readExcel(filename, data)
	default:
		return nil, apperrors.InputRejected(fmt.Sprintf(
			"unsupported file type %q: upload a .csv or .xlsx file", filepath.Ext(filename)))
	}
}

// readCSV hands the raw text to the domain parser unchanged
func (r *DataReader) readCSV(filename string, data []byte) (*table.Table, error) {
	t, err := table.Parse(string(data))
	if err != nil {
		return nil, apperrors.ExecutionFailed(
			fmt.Sprintf("could not parse CSV file %s", filename), err)
	}

	log.Printf("[DataReader] Parsed CSV %s (%d rows, %d columns)",
		filename, t.RowCount(), t.ColumnCount())
	return t, nil
}

// readExcel reads the first sheet of a workbook and rebuilds it as CSV text
// so both formats share the same parsing rules.
func (r *DataReader) readExcel(filename string, data []byte) (*table.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.ExecutionFailed(
			fmt.Sprintf("could not open Excel file %s", filename), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.InputRejected(
			fmt.Sprintf("Excel file %s has no sheets", filename))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.ExecutionFailed(
			fmt.Sprintf("could not read sheet %q", sheet), err)
	}
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	t, err := table.Parse(b.String())
	if err != nil {
		return nil, apperrors.ExecutionFailed(
			fmt.Sprintf("could not parse sheet %q of %s", sheet, filename), err)
	}
	return t, nil
}

var _ ports.TableReader = (*DataReader)(nil)
