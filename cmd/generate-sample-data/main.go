// Command generate-sample-data writes example workbooks for manual testing:
// an indirect survey, a direct assessment sheet, the failure/score pair for
// the final-result flow and the two objective surveys.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"

	"obeserver/tabular"
)

var likertScale = []string{
	"Strongly Disagree (1)",
	"Disagree (2)",
	"Agree (3)",
	"Strongly Agree (4)",
	"N/A",
}

var grades = []string{"A", "B", "C", "D"}

func main() {
	outDir := flag.String("out", "sample-data", "output directory")
	students := flag.Int("students", 40, "students per workbook")
	flag.Parse()

	gofakeit.Seed(0)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	writers := []struct {
		name  string
		write func(n int) *excelize.File
	}{
		{"indirect_survey.xlsx", writeIndirectSurvey},
		{"direct_assessment.xlsx", writeDirectAssessment},
		{"failure_list.xlsx", writeFailureList},
		{"score_list.xlsx", writeScoreList},
		{"alumni_survey.xlsx", writeObjectiveSurvey},
		{"employer_survey.xlsx", writeObjectiveSurvey},
	}

	for _, w := range writers {
		path := filepath.Join(*outDir, w.name)
		f := w.write(*students)
		if err := f.SaveAs(path); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func writeIndirectSurvey(n int) *excelize.File {
	headers := []string{"Program (Department/Institute)", "Batch", "Year of Graduation"}
	for _, entry := range tabular.OutcomeCatalog {
		headers = append(headers, entry.Label)
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := []string{"Software Engineering", "20SW", "2024"}
		for range tabular.OutcomeCatalog {
			row = append(row, gofakeit.RandomString(likertScale))
		}
		rows = append(rows, row)
	}

	return buildWorkbook(headers, rows)
}

func writeDirectAssessment(int) *excelize.File {
	headers := []string{"PLOs", "PLO Direct Assessment (%)"}

	rows := make([][]string, 0, tabular.OutcomeCount)
	for i := 1; i <= tabular.OutcomeCount; i++ {
		pct := gofakeit.Float64Range(40, 95)
		rows = append(rows, []string{
			fmt.Sprintf("PLO %d", i),
			strconv.FormatFloat(pct, 'f', 2, 64),
		})
	}

	return buildWorkbook(headers, rows)
}

func writeFailureList(n int) *excelize.File {
	headers := []string{"Batch", "Name"}

	rows := make([][]string, 0, n/4)
	for i := 0; i < n/4; i++ {
		rows = append(rows, []string{regNo(i), gofakeit.Name()})
	}

	return buildWorkbook(headers, rows)
}

func writeScoreList(n int) *excelize.File {
	headers := []string{"Batch", "Name"}
	for i := 1; i <= tabular.OutcomeCount; i++ {
		headers = append(headers, fmt.Sprintf("SEPLO%d", i))
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := []string{regNo(i), gofakeit.Name()}
		for j := 0; j < tabular.OutcomeCount; j++ {
			row = append(row, strconv.FormatFloat(gofakeit.Float64Range(30, 100), 'f', 2, 64))
		}
		rows = append(rows, row)
	}

	return buildWorkbook(headers, rows)
}

func writeObjectiveSurvey(n int) *excelize.File {
	headers := []string{"Name"}
	for obj := 1; obj <= tabular.ObjectiveCount; obj++ {
		for q := 1; q <= 3; q++ {
			headers = append(headers, fmt.Sprintf("PEO-%d Question %d", obj, q))
		}
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := []string{gofakeit.Name()}
		for j := 1; j < len(headers); j++ {
			row = append(row, gofakeit.RandomString(grades))
		}
		rows = append(rows, row)
	}

	return buildWorkbook(headers, rows)
}

func regNo(i int) string {
	return fmt.Sprintf("20SW%03d", i+1)
}

func buildWorkbook(headers []string, rows [][]string) *excelize.File {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f
}
