package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/crossvote/backtest"
	"github.com/rustyeddy/crossvote/internal/fixtures"
	"github.com/rustyeddy/crossvote/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenResult(t *testing.T) *backtest.Result {
	t.Helper()
	start, err := market.ParseDay("2024-01-22")
	require.NoError(t, err)
	end, err := market.ParseDay("2024-02-23")
	require.NoError(t, err)

	res, err := backtest.RunBacktest(fixtures.GoldenSeries(), backtest.DefaultRequest(start, end))
	require.NoError(t, err)
	return res
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteBlotterCSV(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBlotterCSV(&buf, res.Blotter))

	rows := readCSV(t, buf.String())
	require.Len(t, rows, 26)
	assert.Equal(t, BlotterHeader, rows[0])
	assert.Equal(t, []string{"2024-01-22", "1", "BUY", "IVV", "49.95", "100.1", "MARKET", "FILLED"}, rows[1])
	assert.Equal(t, "25", rows[25][1])
}

func TestWriteLedgerCSV(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, res.Ledger))

	rows := readCSV(t, buf.String())
	require.Len(t, rows, 26)
	assert.Equal(t, LedgerHeader, rows[0])
	assert.Equal(t, []string{"2024-01-22", "49.95", "100.1", "5000", "10000", "0", "-0.0222", "0"}, rows[1])
	assert.Equal(t, []string{"2024-02-02", "54.05", "102.76", "5254.97", "10808.96", "0.0809", "-0.0212", "-0.0006"}, rows[10])
	assert.Equal(t, "12628.39", rows[25][4])
}

func TestWriteSummaryCSV(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, res.Summary))

	rows := readCSV(t, buf.String())
	require.Len(t, rows, 11)
	assert.Equal(t, SummaryHeader, rows[0])
	assert.Equal(t, "r", rows[1][0])
	assert.True(t, strings.HasPrefix(rows[1][1], "0.90224616"), rows[1][1])
	assert.Equal(t, []string{"observations", "25"}, rows[10])
}

func TestWriteCSVFiles(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteCSVFiles(dir, res)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, name := range []string{"blotter.csv", "ledger.csv", "summary.csv"} {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestPrintResult(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	var buf bytes.Buffer
	PrintResult(&buf, res, false)
	out := buf.String()

	assert.Contains(t, out, "Run ID:        "+res.RunID)
	assert.Contains(t, out, "Symbol:        IVV")
	assert.Contains(t, out, "Start:         2024-01-22 (bar 15)")
	assert.Contains(t, out, "Short Windows: [5, 7)")
	assert.Contains(t, out, "End Value:     12628.39")
	assert.Contains(t, out, "Trades:        25")
	assert.Contains(t, out, "Beta:          0.5292")
	assert.NotContains(t, out, "Ledger")

	buf.Reset()
	PrintResult(&buf, res, true)
	out = buf.String()
	assert.Contains(t, out, "Blotter")
	assert.Contains(t, out, "Ledger")
	assert.Contains(t, out, "5254.97")
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOrg(&buf, res))
	out := buf.String()

	lines := strings.Split(out, "\n")
	assert.Equal(t, "* BACKTEST: crossover IVV 2024-01-22..2024-02-23", lines[0])
	assert.Equal(t, ":PROPERTIES:", lines[1])
	assert.Contains(t, out, ":RUN_ID:      "+res.RunID)
	assert.Contains(t, out, ":END_VALUE:   12628.39")
	assert.Contains(t, out, ":TRADES:      25")
	assert.Contains(t, out, "| Short Windows | [5, 7) |")
	assert.Contains(t, out, "| 2024-01-22 | BUY | 49.95 | 100.10 | 49.95 | 5000.00 | 10000.00 | 0.0000 |")

	rows := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "| 2024-") {
			rows++
		}
	}
	assert.Equal(t, 25, rows)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"TEXT", FormatTable, false},
		{" csv ", FormatCSV, false},
		{"org", FormatOrg, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteFormats(t *testing.T) {
	t.Parallel()
	res := goldenResult(t)

	for _, format := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, res, format, false), format)
		assert.NotEmpty(t, buf.String(), format)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatCSV, false))
	sections := strings.Split(strings.TrimSpace(buf.String()), "\n\n")
	require.Len(t, sections, 3)
	assert.True(t, strings.HasPrefix(sections[0], "date,id,action"))
	assert.True(t, strings.HasPrefix(sections[1], "date,position,price"))
	assert.True(t, strings.HasPrefix(sections[2], "metric,value"))

	assert.Error(t, Write(&buf, res, Format("xml"), false))
}
