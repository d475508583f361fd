package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/congestion-router/pkg"
	"github.com/lintang-b-s/congestion-router/pkg/util"
)

var ErrDataLoad = errors.New("traffic data could not be loaded")

func dataLoadErrorf(orig error, format string, a ...interface{}) error {
	if orig == nil {
		orig = ErrDataLoad
	} else {
		orig = fmt.Errorf("%w: %w", ErrDataLoad, orig)
	}
	return util.WrapErrorf(orig, util.ErrInternalServerError, format, a...)
}

var requiredColumns = []string{pkg.COLUMN_LOCATION, pkg.COLUMN_CONGESTION_LEVEL, pkg.COLUMN_TIME}

// Parse reads a csv ledger with a header row. column order is free and extra columns are ignored.
func Parse(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, dataLoadErrorf(nil, "traffic data is empty, header row with columns %v is required", requiredColumns)
	}
	if err != nil {
		return nil, dataLoadErrorf(err, "read traffic data header: %v", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := colIdx[h]; !dup {
			colIdx[h] = i
		}
	}

	missing := make([]string, 0)
	for _, c := range requiredColumns {
		if _, ok := colIdx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, dataLoadErrorf(nil, "traffic data is missing required columns %v", missing)
	}

	locIdx := colIdx[pkg.COLUMN_LOCATION]
	congIdx := colIdx[pkg.COLUMN_CONGESTION_LEVEL]
	timeIdx := colIdx[pkg.COLUMN_TIME]

	observations := make([]Observation, 0)
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, dataLoadErrorf(err, "read traffic data row %d: %v", row, err)
		}

		o, err := parseRecord(row, record, locIdx, congIdx, timeIdx)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}

	return New(observations), nil
}

func parseRecord(row int, record []string, locIdx, congIdx, timeIdx int) (Observation, error) {
	field := func(i int, name string) (string, error) {
		if i >= len(record) {
			return "", dataLoadErrorf(nil, "row %d: column %s is missing", row, name)
		}
		return record[i], nil
	}

	location, err := field(locIdx, pkg.COLUMN_LOCATION)
	if err != nil {
		return Observation{}, err
	}
	if strings.TrimSpace(location) == "" {
		return Observation{}, dataLoadErrorf(nil, "row %d: %s must not be empty", row, pkg.COLUMN_LOCATION)
	}

	rawCount, err := field(congIdx, pkg.COLUMN_CONGESTION_LEVEL)
	if err != nil {
		return Observation{}, err
	}
	count, err := ParseCongestionCount(rawCount)
	if err != nil {
		return Observation{}, dataLoadErrorf(err, "row %d: %s %q: %v", row, pkg.COLUMN_CONGESTION_LEVEL, rawCount, err)
	}

	rawTime, err := field(timeIdx, pkg.COLUMN_TIME)
	if err != nil {
		return Observation{}, err
	}
	rawTime = strings.TrimSpace(rawTime)
	clock, err := util.ParseClock(rawTime)
	if err != nil {
		return Observation{}, dataLoadErrorf(err, "row %d: %s %q is not HH:MM", row, pkg.COLUMN_TIME, rawTime)
	}

	return Observation{
		Location:        location,
		CongestionCount: count,
		Time:            rawTime,
		Clock:           clock,
	}, nil
}

// ParseCongestionCount accepts a non-negative whole number, written either as an integer ("3") or as a
// float with no fractional part ("3.0").
func ParseCongestionCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n < 0:
			return 0, errors.New("congestion count must not be negative")
		case n > math.MaxInt32:
			return 0, errors.New("congestion count is too large")
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("congestion count is not a number")
	}
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, errors.New("congestion count must be finite")
	case f < 0:
		return 0, errors.New("congestion count must not be negative")
	case f != math.Trunc(f):
		return 0, errors.New("congestion count must be a whole number")
	case f > math.MaxInt32:
		return 0, errors.New("congestion count is too large")
	}
	return int(f), nil
}
