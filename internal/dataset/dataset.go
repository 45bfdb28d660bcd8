package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Ahmed-26/goldpulse/internal/domain/models"
)

// Sentinel errors surfaced to the HTTP boundary via errors.Is.
var (
	// ErrNotFound means the dataset file does not exist at the configured path.
	ErrNotFound = errors.New("dataset file not found")
	// ErrMissingColumn means the CSV header lacks one of the required columns.
	ErrMissingColumn = errors.New("missing required column")
	// ErrInsufficientData means fewer records exist than were requested.
	ErrInsufficientData = errors.New("insufficient data")
)

// requiredColumns are the price columns every dataset file must carry.
// Header order is free and extra columns (date/index) are tolerated.
var requiredColumns = []string{"Open", "High", "Low", "Close"}

// dateColumn is optional; when present its cells are kept verbatim for display.
const dateColumn = "Date"

// Dataset holds the historical price records loaded from a CSV file.
// It is immutable after Load and safe for concurrent readers.
type Dataset struct {
	records []models.PriceRecord
}

// Load reads and validates the historical price CSV at path.
//
// It fails with:
//   - ErrNotFound if the file does not exist.
//   - ErrMissingColumn if any of Open/High/Low/Close is absent from the header.
//   - a line-numbered parse error for malformed or non-positive price cells.
//
// Records keep the original file order.
func Load(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.PriceRecord
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		pr, err := cols.toRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		records = append(records, pr)
	}

	return &Dataset{records: records}, nil
}

// Len reports how many records were loaded.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Recent returns the last n records in original file order (no re-sorting).
//
// It fails with ErrInsufficientData when fewer than n records exist, and
// rejects non-positive n.
func (d *Dataset) Recent(n int) ([]models.PriceRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("recent: n must be positive, got %d", n)
	}
	if len(d.records) < n {
		return nil, fmt.Errorf("%w: have %d records, need %d", ErrInsufficientData, len(d.records), n)
	}
	out := make([]models.PriceRecord, n)
	copy(out, d.records[len(d.records)-n:])
	return out, nil
}

// columnIndex maps the required (and optional date) columns to their
// positions in the header of this particular file.
type columnIndex struct {
	open, high, low, close int
	date                   int // -1 when absent
	width                  int
}

// resolveColumns locates every required column by name.
func resolveColumns(header []string) (*columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := pos[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	ci := &columnIndex{
		open:  pos["Open"],
		high:  pos["High"],
		low:   pos["Low"],
		close: pos["Close"],
		date:  -1,
		width: len(header),
	}
	if i, ok := pos[dateColumn]; ok {
		ci.date = i
	}
	return ci, nil
}

// toRecord converts one CSV row into a PriceRecord. It is strict: every
// price cell must parse as a positive float.
func (c *columnIndex) toRecord(rec []string) (models.PriceRecord, error) {
	var pr models.PriceRecord

	if len(rec) != c.width {
		return pr, fmt.Errorf("invalid column count: expected %d got %d", c.width, len(rec))
	}

	parse := func(name string, idx int) (float64, error) {
		s := strings.TrimSpace(rec[idx])
		// Some exported price files carry thousands separators.
		s = strings.ReplaceAll(s, ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q", name, rec[idx])
		}
		if v <= 0 {
			return 0, fmt.Errorf("non-positive %s value %v", name, v)
		}
		return v, nil
	}

	var err error
	if pr.Open, err = parse("Open", c.open); err != nil {
		return pr, err
	}
	if pr.High, err = parse("High", c.high); err != nil {
		return pr, err
	}
	if pr.Low, err = parse("Low", c.low); err != nil {
		return pr, err
	}
	if pr.Close, err = parse("Close", c.close); err != nil {
		return pr, err
	}
	if c.date >= 0 {
		pr.Date = strings.TrimSpace(rec[c.date])
	}
	return pr, nil
}
