package frostql

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PutWorkbook converts each sheet of an Excel workbook to a CSV file and
// uploads it to the stage through PutFile. Warehouses do not ingest XLSX
// directly, so the conversion happens client-side; the staged files are
// named <workbook>_<sheet>.csv (plus the compression extension) and can be
// read back with Reader.CSV.
//
// Returns the local base names of the files that were staged, in sheet
// order.
func (s *Session) PutWorkbook(ctx context.Context, workbookPath, stagePath string, opts ...PutOption) ([]string, error) {
	if workbookPath == "" || stagePath == "" {
		return nil, ErrEmptyPath
	}

	workbook, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = workbook.Close() }()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	tempDir, err := os.MkdirTemp("", "frostql-workbook-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	base := strings.TrimSuffix(filepath.Base(workbookPath), filepath.Ext(workbookPath))

	staged := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}

		fileName := base + "_" + sanitizeSheetName(sheet) + ".csv"
		csvPath := filepath.Join(tempDir, fileName)
		if err := writeCSV(csvPath, rows); err != nil {
			return nil, err
		}

		if err := s.PutFile(ctx, csvPath, stagePath, opts...); err != nil {
			return nil, err
		}
		staged = append(staged, fileName)
	}
	return staged, nil
}

// writeCSV writes sheet rows to path, padding short rows to the header
// width so every record has the same field count.
func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path) //nolint:gosec // Path is inside our own temporary directory
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	writer := csv.NewWriter(file)
	for _, row := range rows {
		record := row
		if len(record) < width {
			record = make([]string, width)
			copy(record, row)
		}
		if err := writer.Write(record); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return file.Close()
}

// sanitizeSheetName makes a sheet name safe to use inside a file name.
func sanitizeSheetName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "sheet"
	}
	return sb.String()
}
