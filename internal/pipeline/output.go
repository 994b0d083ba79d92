package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Header is the review sheet column layout, shared by CSV and XLSX output.
var Header = []string{"title", "date", "start_time", "duration", "episode", "confidence", "new_filename"}

// WriteCSV writes the review sheet.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Title,
			row.Date,
			row.StartTime,
			row.Duration,
			strconv.Itoa(row.Episode),
			formatConfidence(row.Confidence),
			row.NewFilename,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the review sheet as a spreadsheet for manual editing.
func WriteXLSX(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row coordinates: %w", err)
		}
		values := []any{
			row.Title,
			row.Date,
			row.StartTime,
			row.Duration,
			row.Episode,
			row.Confidence,
			row.NewFilename,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 3, 64)
}
