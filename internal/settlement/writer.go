package settlement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
)

const maxNameCollisions = 100

// FileWriter appends settlement rows to a CSV file in chunks. Rows written
// after the last Commit are discarded by Rollback.
type FileWriter struct {
	path      string
	file      *os.File
	csv       *csv.Writer
	committed int64
}

// CreateFile creates settlement_<batchID>_<yyyyMMdd_HHmmss>.csv in dir and
// writes the header. An existing file is never overwritten: a numeric
// suffix is added instead.
func CreateFile(dir, batchID string, now time.Time) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output dir %s: %w", dir, err)
	}

	base := fmt.Sprintf("settlement_%s_%s", safeName(batchID), now.Format("20060102_150405"))
	var (
		file *os.File
		path string
		err  error
	)
	for i := 0; i < maxNameCollisions; i++ {
		name := base + ".csv"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.csv", base, i)
		}
		path = filepath.Join(dir, name)
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error creating settlement file: %w", err)
	}

	w := &FileWriter{path: path, file: file, csv: csv.NewWriter(file)}
	if err := w.write(models.SettlementCSVHeader); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := w.Sync(); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := w.Commit(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) Path() string {
	return w.path
}

func (w *FileWriter) Append(records []models.SettlementRecord) error {
	for _, rec := range records {
		if err := w.csv.Write(rec.CSVRow()); err != nil {
			return fmt.Errorf("error writing settlement row %s: %w", rec.TransactionID, err)
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Sync makes appended rows durable.
func (w *FileWriter) Sync() error {
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("error syncing %s: %w", w.path, err)
	}
	return nil
}

// Commit marks everything written so far as kept.
func (w *FileWriter) Commit() error {
	offset, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("error reading offset of %s: %w", w.path, err)
	}
	w.committed = offset
	return nil
}

// Rollback drops rows written since the last Commit.
func (w *FileWriter) Rollback() error {
	if err := w.file.Truncate(w.committed); err != nil {
		return fmt.Errorf("error truncating %s: %w", w.path, err)
	}
	if _, err := w.file.Seek(w.committed, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking %s: %w", w.path, err)
	}
	return nil
}

func (w *FileWriter) Close() error {
	return w.file.Close()
}

func (w *FileWriter) write(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("error writing %s: %w", w.path, err)
	}
	w.csv.Flush()
	return w.csv.Error()
}

func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
