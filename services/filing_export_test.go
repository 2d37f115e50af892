package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportFilingsExcel(t *testing.T) {
	svc := newTestService()

	svc.Add("B-LATER", "2025-02-01", "second")
	svc.Add("A-FIRST", "2025-01-01", "first")

	buf, err := ExportFilingsExcel(svc)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Filings", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Case Number", header)

	// Rows follow list ordering: deadline ascending
	first, _ := f.GetCellValue("Filings", "B2")
	assert.Equal(t, "A-FIRST", first)
	firstDeadline, _ := f.GetCellValue("Filings", "C2")
	assert.Equal(t, "2025-01-01", firstDeadline)
	firstReview, _ := f.GetCellValue("Filings", "D2")
	assert.Equal(t, "2024-12-30", firstReview)

	second, _ := f.GetCellValue("Filings", "B3")
	assert.Equal(t, "B-LATER", second)
	completed, _ := f.GetCellValue("Filings", "E3")
	assert.Equal(t, "No", completed)
	notes, _ := f.GetCellValue("Filings", "F3")
	assert.Equal(t, "second", notes)
}

func TestExportFilingsExcel_Empty(t *testing.T) {
	svc := newTestService()

	buf, err := ExportFilingsExcel(svc)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Filings")
	assert.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
