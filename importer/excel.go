// Package importer converts uploaded workbooks into tabular sheets. Only
// the first worksheet of a workbook is read.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"obeserver/tabular"
)

// ReadWorkbook parses the first sheet of an xlsx file on disk. The first
// row defines the schema; returns tabular.ErrEmptyInput when no data rows
// follow it.
func ReadWorkbook(path string) (*tabular.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f, 0)
}

// ReadWorkbookFrom parses the first sheet of an xlsx stream.
func ReadWorkbookFrom(r io.Reader) (*tabular.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f, 0)
}

// ReadPredictionSheet parses a bulk-prediction sheet whose header row is not
// necessarily the first: institute exports prepend title/banner rows. The
// header row is detected as the first row carrying both an identifier-like
// column and at least one outcome-like column; rows above it are discarded.
func ReadPredictionSheet(r io.Reader) (*tabular.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	matrix, err := sheetMatrix(f)
	if err != nil {
		return nil, err
	}
	headerIdx := DetectHeaderRow(matrix)
	if headerIdx == -1 {
		return nil, fmt.Errorf("could not detect header row: expected a registration/roll number column and PLO columns")
	}
	return buildSheet(matrix[headerIdx:])
}

// DetectHeaderRow scans for the row that looks like the real header:
// a registration-number-ish column, a name column and at least one
// outcome column. Returns -1 when no row qualifies.
func DetectHeaderRow(matrix [][]string) int {
	for i, row := range matrix {
		hasReg := false
		hasName := false
		for _, cell := range row {
			canon := tabular.CanonicalizeHeader(cell)
			if strings.Contains(canon, "registrationno") || canon == "regno" || canon == "rollno" {
				hasReg = true
			}
			if canon == "name" {
				hasName = true
			}
		}
		if hasReg && hasName && tabular.HasOutcomeColumn(row) {
			return i
		}
	}
	return -1
}

func readFirstSheet(f *excelize.File, index int) (*tabular.Sheet, error) {
	matrix, err := sheetMatrix(f)
	if err != nil {
		return nil, err
	}
	if len(matrix) == 0 {
		return nil, fmt.Errorf("workbook: %w", tabular.ErrEmptyInput)
	}
	return buildSheet(matrix)
}

func sheetMatrix(f *excelize.File) ([][]string, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in workbook")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// buildSheet turns a raw matrix (header row first) into a Sheet. Columns
// with a blank header are skipped; on duplicate headers the first column
// wins. Rows that are entirely blank are dropped.
func buildSheet(matrix [][]string) (*tabular.Sheet, error) {
	header := matrix[0]
	headers := make([]string, 0, len(header))
	indexOf := make(map[string]int, len(header))
	for i, label := range header {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := indexOf[label]; dup {
			continue
		}
		indexOf[label] = i
		headers = append(headers, label)
	}

	sheet := &tabular.Sheet{Headers: headers}
	for _, raw := range matrix[1:] {
		row := make(tabular.Row, len(headers))
		blank := true
		for _, label := range headers {
			idx := indexOf[label]
			value := ""
			if idx < len(raw) {
				value = raw[idx]
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			row[label] = value
		}
		if blank {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("workbook: %w", tabular.ErrEmptyInput)
	}
	return sheet, nil
}
