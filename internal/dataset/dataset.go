package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Well-known columns of an analysis file.
const (
	ColumnWinProbability = 0
	ColumnGoalImminence  = 2
)

// ErrNoDataset is returned when no analysis is available for a replay.
var ErrNoDataset = errors.New("no dataset loaded")

// Dataset holds the columns of one analysis file. Columns may differ in
// length when the file has ragged rows.
type Dataset struct {
	Columns [][]float64
}

// Column returns column i, or nil when the file has fewer columns.
func (d *Dataset) Column(i int) []float64 {
	if d == nil || i < 0 || i >= len(d.Columns) {
		return nil
	}
	return d.Columns[i]
}

// Frames returns the length of the longest column.
func (d *Dataset) Frames() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, c := range d.Columns {
		n = max(n, len(c))
	}
	return n
}

// Parse reads a comma-separated file of decimal numbers into column-major
// form. When hasHeader is set the first row is skipped. A single token that
// is not a number fails the whole file.
func Parse(r io.Reader, hasHeader bool) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	ds := &Dataset{}
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv")
		}
		row++
		if hasHeader && row == 1 {
			continue
		}
		for col, tok := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", row, col+1)
			}
			if col >= len(ds.Columns) {
				ds.Columns = append(ds.Columns, nil)
			}
			ds.Columns[col] = append(ds.Columns[col], v)
		}
	}
	return ds, nil
}

// ParseFile opens and parses the analysis file at path. A missing file
// yields ErrNoDataset.
func ParseFile(path string, hasHeader bool) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDataset
		}
		return nil, errors.Wrap(err, "opening analysis")
	}
	defer f.Close()

	ds, err := Parse(f, hasHeader)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	log.WithFields(log.Fields{"path": path, "columns": len(ds.Columns), "frames": ds.Frames()}).Debug("analysis parsed")
	return ds, nil
}
