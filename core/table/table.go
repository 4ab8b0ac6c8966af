package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Row holds one record's cell values keyed by column name.
type Row map[string]string

// Table is one file's full tabular content: the header in file order
// plus all data rows. Files are small enough to hold in memory whole;
// streaming is explicitly out of scope.
type Table struct {
	Header []string
	Rows   []Row
}

// ParseError wraps any failure to read a file as CSV. Files failing to
// parse are skipped; the batch run continues.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFile parses a CSV file, detecting its separator from the leading
// lines. It returns the parsed table and the detected separator.
func ReadFile(path string) (*Table, rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &ParseError{Path: path, Err: err}
	}

	sep, err := DetectSeparator(data)
	if err != nil {
		return nil, 0, &ParseError{Path: path, Err: err}
	}

	tbl, err := Read(bytes.NewReader(data), sep)
	if err != nil {
		return nil, 0, &ParseError{Path: path, Err: err}
	}

	return tbl, sep, nil
}

// Read parses CSV content with a known separator. The first record is
// the header; every data row must have the same number of fields.
func Read(r io.Reader, sep rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	tbl := &Table{Header: header}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// Write serializes the table with the given separator. Cells missing
// from a row are written empty.
func (t *Table) Write(w io.Writer, sep rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = sep

	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Header))
	for i, row := range t.Rows {
		for j, name := range t.Header {
			record[j] = row[name]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Bytes serializes the table with the given separator into memory.
func (t *Table) Bytes(sep rune) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, sep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
