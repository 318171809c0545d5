package importer

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"obeserver/tabular"
)

func workbookBytes(t *testing.T, matrix [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range matrix {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadWorkbookFrom(t *testing.T) {
	buf := workbookBytes(t, [][]string{
		{"Batch", "Name", "SEPLO1"},
		{"20SW01", "Ali", "85.5"},
		{"20SW02", "Sara", "42"},
	})

	sheet, err := ReadWorkbookFrom(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Batch", "Name", "SEPLO1"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Ali", sheet.Rows[0].Get("Name"))
	assert.Equal(t, "42", sheet.Rows[1].Get("SEPLO1"))
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Batch"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "20SW01"))

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))

	sheet, err := ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "20SW01", sheet.Rows[0].Get("Batch"))
}

func TestReadWorkbookFromSkipsBlankColumnsAndRows(t *testing.T) {
	buf := workbookBytes(t, [][]string{
		{"Batch", "", "Name", "Batch"},
		{"20SW01", "x", "Ali", "dup"},
		{"", "", "", ""},
	})

	sheet, err := ReadWorkbookFrom(buf)
	require.NoError(t, err)

	// Blank header dropped; duplicate header keeps the first column.
	assert.Equal(t, []string{"Batch", "Name"}, sheet.Headers)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "20SW01", sheet.Rows[0].Get("Batch"))
}

func TestReadWorkbookFromEmpty(t *testing.T) {
	buf := workbookBytes(t, [][]string{
		{"Batch", "Name"},
	})

	_, err := ReadWorkbookFrom(buf)
	assert.ErrorIs(t, err, tabular.ErrEmptyInput)
}

func TestDetectHeaderRow(t *testing.T) {
	matrix := [][]string{
		{"Mehran University of Engineering & Technology"},
		{"Department of Software Engineering"},
		{"Registration No", "Name", "PLO 1", "PLO 2"},
		{"20SW01", "Ali", "80", "75"},
	}

	assert.Equal(t, 2, DetectHeaderRow(matrix))
}

func TestDetectHeaderRowNotFound(t *testing.T) {
	matrix := [][]string{
		{"Some", "Unrelated", "Sheet"},
		{"a", "b", "c"},
	}

	assert.Equal(t, -1, DetectHeaderRow(matrix))
}

func TestReadPredictionSheet(t *testing.T) {
	buf := workbookBytes(t, [][]string{
		{"Result Sheet Spring 2024"},
		{"Reg No", "Name", "SEPLO1", "SEPLO2"},
		{"20SW01", "Ali", "80", "75"},
		{"20SW02", "Sara", "55", "90"},
	})

	sheet, err := ReadPredictionSheet(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reg No", "Name", "SEPLO1", "SEPLO2"}, sheet.Headers)
	assert.Len(t, sheet.Rows, 2)
}

func TestReadPredictionSheetNoHeader(t *testing.T) {
	buf := workbookBytes(t, [][]string{
		{"Just", "Some", "Cells"},
	})

	_, err := ReadPredictionSheet(buf)
	assert.Error(t, err)
}
