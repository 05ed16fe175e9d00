// Package money provides a fixed-point representation for prices and budgets.
//
// Amounts are stored as an integer number of cents so that repeated
// purchase and sale operations never drift through floating point rounding.
// Parsing and formatting go through shopspring/decimal.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits kept for every amount.
const Decimals = 2

// Amount represents a monetary amount in cents.
type Amount int64

// Zero is the empty amount.
const Zero Amount = 0

// Cents creates an Amount from a raw number of cents.
func Cents(c int64) Amount {
	return Amount(c)
}

// Parse converts a decimal string such as "900" or "12.50" into an Amount.
// Values with more than two decimal places are rejected rather than rounded.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// MustParse is like Parse but panics on error. Intended for constants and fixtures.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: MustParse(%q): %v", s, err))
	}
	return a
}

// FromDecimal converts a decimal value into an Amount.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.Equal(d.Round(Decimals)) {
		return Zero, fmt.Errorf(
			"%w: %s has more than %d decimal places",
			ErrInvalidAmount, d.String(), Decimals,
		)
	}
	cents := d.Shift(Decimals)
	if cents.GreaterThan(decimal.NewFromInt(math.MaxInt64)) ||
		cents.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	return Amount(cents.IntPart()), nil
}

// FromFloat converts a float into an Amount, rounding to the nearest cent.
func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return FromDecimal(decimal.NewFromFloat(f).Round(Decimals))
}

// Cents returns the raw number of cents.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Decimal returns the amount as a decimal number of currency units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Decimals)
}

// String formats the amount with exactly two decimal places, e.g. "900.00".
func (a Amount) String() string {
	return a.Decimal().StringFixed(Decimals)
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// Add returns a+b, failing on int64 overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	return a + b, nil
}

// Sub returns a-b and fails with ErrNegativeAmount if the result drops below zero.
func (a Amount) Sub(b Amount) (Amount, error) {
	res, err := a.Add(-b)
	if err != nil {
		return Zero, err
	}
	if res.IsNegative() {
		return Zero, ErrNegativeAmount
	}
	return res, nil
}

// GreaterThanOrEqual reports whether a >= b.
func (a Amount) GreaterThanOrEqual(b Amount) bool {
	return a >= b
}

// MarshalJSON renders the amount as a decimal string to avoid float rounding on clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON string ("12.50") or a JSON number (12.5).
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, string(data))
		}
		s = n.String()
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Decode implements envconfig.Decoder so amounts can be read from the environment.
func (a *Amount) Decode(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value stores the amount as an integer number of cents.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan reads an integer number of cents from the database.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	case nil:
		*a = Zero
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidAmount, src)
	}
	return nil
}

func (a *Amount) scanString(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	*a = Amount(n)
	return nil
}
