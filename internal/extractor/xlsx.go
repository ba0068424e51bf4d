package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FlattenWorkbook opens an XLSX workbook from memory and renders its first
// sheet as comma-delimited text, so the table parser can treat spreadsheet
// exports exactly like CSV uploads. Rows keep their cell order; quoting is
// handled by the CSV writer so cells containing commas survive.
func FlattenWorkbook(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
