package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/logger"
)

// requiredColumns is the thruster-performance CSV header. Column order is
// not significant — the loader is lenient to row ordering but strict on
// column names, so every one of these must appear exactly once.
var requiredColumns = []string{"pwm", "rpm", "current", "voltage", "power", "force", "efficiency"}

// LoadCSV parses a thruster-performance table from r and builds a Table
// from it. The header row is mandatory and its columns may appear in any
// order, but every name in requiredColumns must be present exactly once.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		logger.Log.Error().Err(err).Msg("perf: csv parse failure")
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrInvalidTable)
	}

	col, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Record[scalar.F32], 0, len(records)-1)
	for i, row := range records[1:] {
		rec, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidTable, i+2, err)
		}
		rows = append(rows, rec)
	}

	return NewTable(rows)
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		if _, dup := idx[name]; dup && slices.Contains(requiredColumns, name) {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, name)
		}
		idx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidTable, name)
		}
	}
	return idx, nil
}

func parseRow(row []string, col map[string]int) (Record[scalar.F32], error) {
	field := func(name string) (float32, error) {
		i := col[name]
		if i >= len(row) {
			return 0, fmt.Errorf("missing value for %q", name)
		}
		v, err := strconv.ParseFloat(row[i], 32)
		if err != nil {
			return 0, fmt.Errorf("invalid %q value %q: %w", name, row[i], err)
		}
		return float32(v), nil
	}

	var rec Record[scalar.F32]
	for name, dst := range map[string]*scalar.F32{
		"pwm":        &rec.PWM,
		"rpm":        &rec.RPM,
		"current":    &rec.Current,
		"voltage":    &rec.Voltage,
		"power":      &rec.Power,
		"force":      &rec.Force,
		"efficiency": &rec.Efficiency,
	} {
		v, err := field(name)
		if err != nil {
			return Record[scalar.F32]{}, err
		}
		*dst = scalar.F32(v)
	}
	return rec, nil
}
