package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var requiredColumns = []string{"date", "open", "high", "low", "close", "vwap"}

// LoadCSV reads a daily bar file with a header row naming at least
// Date, Open, High, Low, Close and VWAP. Other columns are ignored.
func LoadCSV(path, symbol string) (*PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ps, err := ReadCSV(f, symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ps.Source = path
	return ps, nil
}

// ReadCSV parses bars from r. See LoadCSV for the expected layout.
func ReadCSV(r io.Reader, symbol string) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySeries
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	pos := make([]int, len(requiredColumns))
	for i, name := range requiredColumns {
		p, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q in header %v", name, header)
		}
		pos[i] = p
	}

	var bars []Bar
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		bar, err := parseRow(row, pos)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		bars = append(bars, bar)
	}

	return NewPriceSeries(symbol, bars)
}

func parseRow(row []string, pos []int) (Bar, error) {
	for _, p := range pos {
		if p >= len(row) {
			return Bar{}, fmt.Errorf("short row (%d fields): %v", len(row), row)
		}
	}

	day, err := ParseDay(row[pos[0]])
	if err != nil {
		return Bar{}, err
	}

	var v [5]float64
	for i := range v {
		field := strings.TrimSpace(row[pos[i+1]])
		v[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad %s %q: %w", requiredColumns[i+1], field, err)
		}
	}
	return NewBar(day, v[0], v[1], v[2], v[3], v[4]), nil
}
