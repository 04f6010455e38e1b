// Package id hands out run identifiers.
package id

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator makes ULIDs that sort in creation order, also within one
// millisecond.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator draws entropy from r. A seeded reader gives a repeatable
// id sequence.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{entropy: ulid.Monotonic(r, 0)}
}

// At returns an id stamped with t. It fails only when t is outside the
// ULID time range or the entropy reader does.
func (g *Generator) At(t time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := ulid.New(ulid.Timestamp(t), g.entropy)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

var std = NewGenerator(rand.Reader)

// New returns an id stamped now.
func New() string {
	return At(time.Now())
}

// At returns an id stamped with t from the package generator. Run results
// use it so the id and the Created time agree.
func At(t time.Time) string {
	s, err := std.At(t)
	if err != nil {
		panic(err)
	}
	return s
}

// Time is the millisecond timestamp carried by id s, in UTC.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()).UTC(), nil
}
