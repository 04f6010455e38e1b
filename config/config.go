package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/crossvote/backtest"
	"github.com/rustyeddy/crossvote/market"
	"github.com/rustyeddy/crossvote/strategies"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config represents a complete backtest run.
type Config struct {
	Data     DataConfig     `json:"data" yaml:"data"`
	Backtest BacktestConfig `json:"backtest" yaml:"backtest"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// DataConfig locates the price series.
type DataConfig struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"` // "csv" (also when empty) or "sqlite"
	Symbol string `json:"symbol" yaml:"symbol"`
}

// BacktestConfig holds the run parameters. Dates are YYYY-MM-DD.
type BacktestConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`

	MinShort int     `json:"min_short" yaml:"min_short"`
	MaxShort int     `json:"max_short" yaml:"max_short"`
	MinLong  int     `json:"min_long" yaml:"min_long"`
	MaxLong  int     `json:"max_long" yaml:"max_long"`
	BuyBias  float64 `json:"buy_bias" yaml:"buy_bias"`
	SellBias float64 `json:"sell_bias" yaml:"sell_bias"`

	InitialCash  float64 `json:"initial_cash" yaml:"initial_cash"`
	BuyFraction  float64 `json:"buy_fraction" yaml:"buy_fraction"`
	SellFraction float64 `json:"sell_fraction" yaml:"sell_fraction"`
	Permissive   bool    `json:"permissive,omitempty" yaml:"permissive,omitempty"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields the
// file leaves out keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required")
	}
	switch c.Data.Format {
	case "", "csv", "sqlite":
	default:
		return fmt.Errorf("data.format must be 'csv' or 'sqlite'")
	}
	if c.Data.Symbol == "" {
		return fmt.Errorf("data.symbol is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	req, err := c.Request()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("backtest: %w", err)
	}
	if _, err := strategies.ByName(req.Strategy, req.Crossover); err != nil {
		return fmt.Errorf("backtest: %w", err)
	}
	return nil
}

// Crossover returns the crossover grid of the backtest section.
func (b BacktestConfig) Crossover() strategies.CrossoverConfig {
	return strategies.CrossoverConfig{
		MinShort: b.MinShort,
		MaxShort: b.MaxShort,
		MinLong:  b.MinLong,
		MaxLong:  b.MaxLong,
		BuyBias:  b.BuyBias,
		SellBias: b.SellBias,
	}
}

// Request converts the backtest section to a backtest.Request. The
// logger is left for the caller to attach.
func (c *Config) Request() (backtest.Request, error) {
	b := c.Backtest
	start, err := market.ParseDay(b.Start)
	if err != nil {
		return backtest.Request{}, fmt.Errorf("backtest.start: %w", err)
	}
	end, err := market.ParseDay(b.End)
	if err != nil {
		return backtest.Request{}, fmt.Errorf("backtest.end: %w", err)
	}

	return backtest.Request{
		Start:        start,
		End:          end,
		Strategy:     b.Strategy,
		Crossover:    b.Crossover(),
		InitialCash:  b.InitialCash,
		BuyFraction:  b.BuyFraction,
		SellFraction: b.SellFraction,
		Permissive:   b.Permissive,
	}, nil
}

// LoadSeries reads the configured price series.
func (d DataConfig) LoadSeries(ctx context.Context) (*market.PriceSeries, error) {
	switch d.Format {
	case "sqlite":
		return market.LoadSQLite(ctx, d.Path, d.Symbol)
	case "csv", "":
		return market.LoadCSV(d.Path, d.Symbol)
	}
	return nil, fmt.Errorf("unknown data format %q", d.Format)
}

// Default returns the configuration of the original IVV study.
func Default() *Config {
	cc := strategies.DefaultCrossoverConfig()
	return &Config{
		Data: DataConfig{
			Path:   "./IVV.csv",
			Format: "csv",
			Symbol: "IVV",
		},
		Backtest: BacktestConfig{
			Strategy:     "crossover",
			Start:        "2015-04-03",
			End:          "2015-05-10",
			MinShort:     cc.MinShort,
			MaxShort:     cc.MaxShort,
			MinLong:      cc.MinLong,
			MaxLong:      cc.MaxLong,
			InitialCash:  10000,
			BuyFraction:  0.5,
			SellFraction: 0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
