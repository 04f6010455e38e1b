package strategies

import (
	"fmt"
	"strings"
)

// Signal is the action a strategy asks for on one trading day.
type Signal int

const (
	Hold Signal = iota
	Buy
	Sell
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// Vote is one window pair's opinion. Abstain is cast when the pair's trend
// lines are parallel and have no crossing to compare against VWAP.
type Vote int

const (
	Abstain Vote = iota
	VoteBuy
	VoteSell
)

func (v Vote) String() string {
	switch v {
	case VoteBuy:
		return "buy"
	case VoteSell:
		return "sell"
	default:
		return "abstain"
	}
}

// Tally counts the votes cast for one day.
type Tally struct {
	Buy     int
	Sell    int
	Abstain int
}

func (t *Tally) Add(v Vote) {
	switch v {
	case VoteBuy:
		t.Buy++
	case VoteSell:
		t.Sell++
	default:
		t.Abstain++
	}
}

func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signal) UnmarshalText(b []byte) error {
	sig, err := ParseSignal(string(b))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// ParseSignal accepts BUY, SELL, HOLD in any case. An empty string is HOLD.
func ParseSignal(s string) (Signal, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	case "HOLD", "":
		return Hold, nil
	}
	return Hold, fmt.Errorf("unknown signal %q", s)
}
