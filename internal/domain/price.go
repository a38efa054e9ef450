package domain

import (
	"errors"
	"math"
)

// ErrInvalidPrice is returned by NewPrice for NaN or negative input.
var ErrInvalidPrice = errors.New("invalid price")

// Price wraps a float64 to force a total ordering over it. NaN is
// forbidden by construction, along with negative values, and
// comparisons are strict numeric compares — the engine never treats
// two prices as "almost equal".
type Price struct {
	v float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || v < 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{v: v}, nil
}

func (p Price) Float64() float64 {
	return p.v
}

// Less reports whether p sorts strictly before other.
func (p Price) Less(other Price) bool {
	return p.v < other.v
}

// Greater reports whether p sorts strictly after other.
func (p Price) Greater(other Price) bool {
	return p.v > other.v
}

// Equal is a bitwise/value-exact comparison, never "almost equal".
func (p Price) Equal(other Price) bool {
	return p.v == other.v
}
