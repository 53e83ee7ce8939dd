// =============================================================================
// Purchases Manager - XLSX Source Support
// =============================================================================
//
// Catalog and purchase sources may be supplied as .xlsx workbooks instead of
// plain text. The first sheet is read row by row; each row's cells are the
// record's fields, with the same semantics as the whitespace-separated text
// format (for products, the labels cell stays one comma-separated field).
//
// =============================================================================

package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// isXLSX reports whether a source path selects the XLSX reader.
func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// readXLSXRecords reads every row of the workbook's first sheet as one
// tokenized record. Cell values are trimmed; empty cells are dropped so a
// row with a blank trailing labels column parses like its text counterpart.
func readXLSXRecords(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		var fields []string
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				fields = append(fields, cell)
			}
		}
		records = append(records, fields)
	}
	return records, nil
}
