package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"statlab/domain/core"
)

// DataReader loads Excel and CSV files into per-column raw value slices.
// It is the external collaborator that feeds the statistics engines;
// nothing downstream ever touches a file.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Load reads the source into a Table
func (r *DataReader) Load() (*Table, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *DataReader) readExcel() (*Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[DataReader] Sheet1 read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return tableFromRows(rows)
}

func (r *DataReader) readCSV() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return tableFromRows(rows)
}

// tableFromRows converts raw string rows into a column-keyed Table.
// Empty cells become nil so the sample layer can mark them missing.
func tableFromRows(rows [][]string) (*Table, error) {
	headerRow := rows[0]
	headers := make([]core.ColumnKey, len(headerRow))
	columns := make(map[core.ColumnKey][]interface{}, len(headerRow))
	for i, header := range headerRow {
		key, err := core.ParseColumnKey(strings.TrimSpace(header))
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
		if _, dup := columns[key]; dup {
			return nil, fmt.Errorf("duplicate column header %q", key)
		}
		headers[i] = key
		columns[key] = make([]interface{}, 0, len(rows)-1)
	}

	for _, row := range rows[1:] {
		for j, key := range headers {
			var cell interface{}
			if j < len(row) {
				trimmed := strings.TrimSpace(row[j])
				if trimmed != "" {
					cell = trimmed
				}
			}
			columns[key] = append(columns[key], cell)
		}
	}

	log.Printf("[DataReader] file processed (%d columns, %d rows)", len(headers), len(rows)-1)

	return &Table{Headers: headers, columns: columns}, nil
}

// Table is an in-memory, column-oriented view of one source file. It
// implements ports.DatasetReaderPort.
type Table struct {
	Headers []core.ColumnKey
	columns map[core.ColumnKey][]interface{}
}

// NewTable builds a table directly from column data, used by tests and by
// API callers that submit observations inline.
func NewTable(columns map[core.ColumnKey][]interface{}) *Table {
	headers := make([]core.ColumnKey, 0, len(columns))
	for key := range columns {
		headers = append(headers, key)
	}
	return &Table{Headers: headers, columns: columns}
}

// Columns lists the column keys in header order.
func (t *Table) Columns(_ context.Context) ([]core.ColumnKey, error) {
	out := make([]core.ColumnKey, len(t.Headers))
	copy(out, t.Headers)
	return out, nil
}

// Column returns the raw values of one column in row order.
func (t *Table) Column(_ context.Context, key core.ColumnKey) ([]interface{}, error) {
	values, ok := t.columns[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrColumnNotFound, key)
	}
	out := make([]interface{}, len(values))
	copy(out, values)
	return out, nil
}
