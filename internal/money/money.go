// Package money provides an exact fixed-point representation for monetary
// amounts. Amounts are held as an integer count of cents so that sums never
// accumulate binary floating-point error; decimal strings are the only
// boundary format.
package money

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary quantity in cents.
type Amount int64

var ErrTooPrecise = errors.New("amount has more than two decimal places")

// Parse converts a decimal string such as "45.50" into cents.
// More than two fractional digits is rejected rather than rounded.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	if d.Exponent() < -2 {
		return 0, fmt.Errorf("amount %q: %w", s, ErrTooPrecise)
	}

	return Amount(d.Mul(decimal.NewFromInt(100)).IntPart()), nil
}

// String renders the amount as a decimal string with exactly two
// fractional digits, e.g. 4550 -> "45.50".
func (a Amount) String() string {
	return decimal.New(int64(a), -2).StringFixed(2)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// MarshalJSON encodes the amount as a plain decimal literal (45.50).
// The literal is produced from the cent count, so the encoded text is
// exact and round-trips without drift.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number (45.50) or a quoted decimal
// string ("45.50"). Both forms are parsed as decimal text, never as float64.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
