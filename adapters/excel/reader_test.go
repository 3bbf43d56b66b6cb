package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "coanalyst/internal/errors"
)

func TestReadTableCSV(t *testing.T) {
	reader := NewDataReader()

	tbl, err := reader.ReadTable("data.csv", []byte("a,b\n1,2\n3,4"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)
	assert.Equal(t, 2, tbl.RowCount())
}

func TestReadTableRejectsUnknownExtension(t *testing.T) {
	reader := NewDataReader()

	_, err := reader.ReadTable("data.json", []byte("{}"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInputRejected, apperrors.GetCode(err))
}

func TestReadTableExcel(t *testing.T) {
	f := excelize.NewFile()
	cells := map[string]interface{}{
		"A1": "x", "B1": "y",
		"A2": 1, "B2": 2,
		"A3": 3, "B3": 4,
	}
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := NewDataReader().ReadTable("data.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Headers)
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"x", "y"}, tbl.NumericColumns())
}

func TestReadTableEmptyCSV(t *testing.T) {
	_, err := NewDataReader().ReadTable("data.csv", []byte(""))
	assert.Error(t, err)
}
