package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// utf8BOM may prefix the first cell of a log and is dropped.
const utf8BOM = "\ufeff"

// scanCSV streams the records of the log at path to fn. When names is nil
// the first record is the header; otherwise the file is headerless and
// names labels its columns positionally. onHeader, when non-nil, sees the
// column names once before any record. fn receives the 1-based line
// number, the column names and the record, which is only valid for the
// duration of the call.
func scanCSV(path string, names []string, onHeader func(header []string) error, fn func(line int, header, record []string) error) error {
	rc, resolved, err := openLog(path)
	if err != nil {
		return fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer rc.Close() //nolint:errcheck

	reader := csv.NewReader(rc)
	reader.ReuseRecord = true
	if names != nil {
		reader.FieldsPerRecord = len(names)
	}

	header := names
	if header != nil && onHeader != nil {
		if err := onHeader(header); err != nil {
			return fmt.Errorf("csv: %s: %w", resolved, err)
		}
	}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("csv: parse %s: %w", resolved, err)
		}
		line++
		if line == 1 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], utf8BOM)
		}
		if header == nil {
			header = make([]string, len(record))
			for i, h := range record {
				header[i] = strings.TrimSpace(h)
			}
			if onHeader != nil {
				if err := onHeader(header); err != nil {
					return fmt.Errorf("csv: %s: %w", resolved, err)
				}
			}
			continue
		}
		if err := fn(line, header, record); err != nil {
			return fmt.Errorf("csv: %s line %d: %w", resolved, line, err)
		}
	}

	if header == nil {
		return fmt.Errorf("csv: %s is empty (no header row)", resolved)
	}
	slog.Debug("Loaded CSV", "path", resolved, "lines", line)
	return nil
}
