package market

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.sqlite")

	src, err := ReadCSV(strings.NewReader(sampleCSV), "IVV")
	require.NoError(t, err)
	require.NoError(t, SaveSQLite(ctx, path, src))

	// saving twice replaces rather than duplicating
	require.NoError(t, SaveSQLite(ctx, path, src))

	got, err := LoadSQLite(ctx, path, "IVV")
	require.NoError(t, err)
	assert.Equal(t, path, got.Source)
	assert.Equal(t, src.Bars, got.Bars)
}

func TestLoadSQLiteUnknownSymbol(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.sqlite")

	src, err := ReadCSV(strings.NewReader(sampleCSV), "IVV")
	require.NoError(t, err)
	require.NoError(t, SaveSQLite(ctx, path, src))

	_, err = LoadSQLite(ctx, path, "SPY")
	assert.ErrorIs(t, err, ErrEmptySeries)
}
