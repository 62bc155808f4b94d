package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
)

// groupedPattern matches numbers whose commas are all thousands separators.
var groupedPattern = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// Money formats amounts in one currency at a fixed number of fraction digits.
type Money struct {
	Currency string
	Scale    int32
}

// Format renders amount with thousands grouping and the currency code,
// e.g. "ETB 1,234.50".
func (m Money) Format(amount decimal.Decimal) string {
	return FormatAmount(amount, m.Currency, m.Scale)
}

func (m Money) Number(amount decimal.Decimal) string {
	return FormatNumber(amount, m.Scale)
}

func FormatAmount(amount decimal.Decimal, currency string, scale int32) string {
	s := FormatNumber(amount, scale)
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// FormatNumber renders amount with thousands grouping and exactly scale
// fraction digits. A scale of zero drops the decimal point.
func FormatNumber(amount decimal.Decimal, scale int32) string {
	rounded := amount.Abs().Round(scale)
	s := humanize.BigComma(rounded.Truncate(0).BigInt())
	if _, frac, ok := strings.Cut(rounded.StringFixed(scale), "."); ok {
		s += "." + frac
	}
	if amount.Round(scale).IsNegative() {
		s = "-" + s
	}
	return s
}

// ParseAmount parses user input such as "150", "150.5" or "1,250.00".
// Commas are accepted only as thousands separators. Anything that is not a
// plain decimal number wraps bank.ErrInvalidAmount.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty: %w", bank.ErrInvalidAmount)
	}
	if strings.Contains(s, ",") {
		if !groupedPattern.MatchString(s) {
			return decimal.Zero, fmt.Errorf("misplaced thousands separator in %q: %w", input, bank.ErrInvalidAmount)
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount format %q: %w", input, bank.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format %q: %w", input, bank.ErrInvalidAmount)
	}
	return amount, nil
}
