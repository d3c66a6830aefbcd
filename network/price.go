package network

import (
	"fmt"
	"strings"
)

// Price is an amount of money in minor units (cents). Integer storage keeps
// sums over long routes exact, so equal-cost comparisons are reliable.
type Price int64

// Units returns the Price of n whole currency units.
func Units(n int64) Price { return Price(n * 100) }

// Whole returns the whole-unit part of p, truncated toward zero.
func (p Price) Whole() int64 { return int64(p) / 100 }

// String renders p with two decimals, e.g. "364.00".
func (p Price) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ParsePrice parses a decimal string such as "120", "89.5" or "364.00".
// Digits beyond the second decimal are rounded half up.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadPrice)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadPrice, s)
	}

	var cents int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadPrice, s)
		}
		cents = cents*10 + int64(c-'0')
	}
	cents *= 100

	for i, c := range frac {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadPrice, s)
		}
		switch i {
		case 0:
			cents += int64(c-'0') * 10
		case 1:
			cents += int64(c - '0')
		case 2:
			if c >= '5' {
				cents++
			}
		}
	}

	if negative {
		cents = -cents
	}

	return Price(cents), nil
}
