package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Filings"

// ExportFilingsExcel renders the full filing list as an Excel workbook,
// ordered like the list view (deadline ascending).
func ExportFilingsExcel(s *FilingService) (*bytes.Buffer, error) {
	filings, err := s.GetAll(true, 0, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheetName)

	headers := []string{"ID", "Case Number", "Filing Deadline", "Review Date", "Completed", "Notes", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(exportSheetName, "A1", lastHeader, headerStyle)
	}

	for i, filing := range filings {
		row := i + 2
		completed := "No"
		if filing.Completed {
			completed = "Yes"
		}

		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), filing.ID)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), filing.CaseNumber)
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row), filing.FilingDeadline)
		f.SetCellValue(exportSheetName, fmt.Sprintf("D%d", row), filing.ReviewDate)
		f.SetCellValue(exportSheetName, fmt.Sprintf("E%d", row), completed)
		f.SetCellValue(exportSheetName, fmt.Sprintf("F%d", row), filing.Notes)
		f.SetCellValue(exportSheetName, fmt.Sprintf("G%d", row), filing.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	// Reasonable default widths for the text-heavy columns
	f.SetColWidth(exportSheetName, "B", "D", 18)
	f.SetColWidth(exportSheetName, "F", "G", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build export workbook: %w", err)
	}
	return buf, nil
}
