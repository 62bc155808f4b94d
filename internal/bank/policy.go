package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type OverpaymentPolicy string

const (
	// OverpaymentCap applies at most the outstanding loan and ignores the rest.
	OverpaymentCap OverpaymentPolicy = "cap"
	// OverpaymentReject fails a payment larger than the outstanding loan.
	OverpaymentReject OverpaymentPolicy = "reject"
)

// Policy holds the underwriting and numbering rules of a registry.
type Policy struct {
	MinimumOpeningDeposit decimal.Decimal
	CreditMultiplier      decimal.Decimal
	Overpayment           OverpaymentPolicy
	AmountScale           int32
	AccountPrefix         string
	FirstAccountNumber    uint64
}

func DefaultPolicy() Policy {
	return Policy{
		MinimumOpeningDeposit: decimal.NewFromInt(100),
		CreditMultiplier:      decimal.NewFromInt(2),
		Overpayment:           OverpaymentCap,
		AmountScale:           2,
		AccountPrefix:         "ETH",
		FirstAccountNumber:    1001,
	}
}

func (p Policy) Validate() error {
	if p.MinimumOpeningDeposit.IsNegative() {
		return fmt.Errorf("minimum opening deposit can't be negative: %s", p.MinimumOpeningDeposit)
	}
	if p.CreditMultiplier.IsNegative() {
		return fmt.Errorf("credit multiplier can't be negative: %s", p.CreditMultiplier)
	}
	switch p.Overpayment {
	case OverpaymentCap, OverpaymentReject:
	default:
		return fmt.Errorf("unknown overpayment policy %q (must be %q or %q)", p.Overpayment, OverpaymentCap, OverpaymentReject)
	}
	if p.AmountScale < 0 {
		return fmt.Errorf("amount scale can't be negative: %d", p.AmountScale)
	}
	return nil
}

// checkAmount reports whether amount is strictly positive and fits the
// currency's minor unit.
func (p Policy) checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s must be greater than zero: %w", amount, ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(p.AmountScale)) {
		return fmt.Errorf("amount %s has more than %d decimal places: %w", amount, p.AmountScale, ErrInvalidAmount)
	}
	return nil
}
