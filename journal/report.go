// Package journal renders backtest results as text, CSV and org-mode
// reports.
package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/crossvote/backtest"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatOrg   Format = "org"
)

var Formats = []Format{FormatTable, FormatCSV, FormatOrg}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTable, "text":
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatOrg:
		return FormatOrg, nil
	}
	return "", fmt.Errorf("unknown report format %q (want table, csv or org)", s)
}

// Write renders r to w. The csv format writes the blotter, ledger and
// summary tables one after another separated by a blank line.
func Write(w io.Writer, r *backtest.Result, format Format, verbose bool) error {
	switch format {
	case FormatTable, "":
		PrintResult(w, r, verbose)
		return nil

	case FormatCSV:
		if err := WriteBlotterCSV(w, r.Blotter); err != nil {
			return err
		}
		fmt.Fprintln(w)
		if err := WriteLedgerCSV(w, r.Ledger); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return WriteSummaryCSV(w, r.Summary)

	case FormatOrg:
		return WriteOrg(w, r)
	}
	return fmt.Errorf("unknown report format %q", format)
}
