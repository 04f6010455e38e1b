package market

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads every bar for symbol from the bars table at path, in day
// order.
func LoadSQLite(ctx context.Context, path, symbol string) (*PriceSeries, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT epoch, date, open, high, low, close, vwap
		FROM bars
		WHERE symbol = ?
		ORDER BY epoch ASC`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []Bar
	for rows.Next() {
		var (
			b    Bar
			date string
		)
		if err := rows.Scan(&b.Epoch, &date, &b.Open, &b.High, &b.Low, &b.Close, &b.VWAP); err != nil {
			return nil, err
		}
		if b.Date, err = ParseDay(date); err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no bars for %q in %s", ErrEmptySeries, symbol, path)
	}

	ps, err := NewPriceSeries(symbol, bars)
	if err != nil {
		return nil, err
	}
	ps.Source = path
	return ps, nil
}

// SaveSQLite writes the series into the bars table at path, creating the
// schema if needed. Existing bars for the same symbol and day are replaced.
func SaveSQLite(ctx context.Context, path string, ps *PriceSeries) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO bars
		(symbol, epoch, date, open, high, low, close, vwap)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range ps.Bars {
		if _, err := stmt.ExecContext(ctx,
			ps.Symbol, b.Epoch, b.Date.Format(DateLayout),
			b.Open, b.High, b.Low, b.Close, b.VWAP,
		); err != nil {
			return fmt.Errorf("insert %s: %w", b.Date.Format(DateLayout), err)
		}
	}
	return tx.Commit()
}
