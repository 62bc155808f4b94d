package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/utils"
)

type LoanService struct {
	ledger Ledger
}

func NewLoanService(ledger Ledger) *LoanService {
	return &LoanService{ledger: ledger}
}

// CreditLimit is how much the account may borrow right now.
func (ls *LoanService) CreditLimit(id string) (decimal.Decimal, error) {
	acc, err := ls.ledger.FindAccount(normalizeID(id))
	if err != nil {
		return decimal.Zero, err
	}
	return acc.CreditLimit(), nil
}

func (ls *LoanService) RequestLoan(ctx context.Context, id, amount string) (bank.Entry, error) {
	id = normalizeID(id)
	value, err := utils.ParseAmount(amount)
	if err != nil {
		record(ctx, "request_loan", err, "account", id, "amount", amount)
		return bank.Entry{}, err
	}

	e, err := ls.ledger.RequestLoan(id, value)
	record(ctx, "request_loan", err, "account", id, "amount", value.String())
	return e, err
}

// PayLoan repays the outstanding loan. The returned entry holds the amount
// actually applied, which is less than requested when the payment was capped.
func (ls *LoanService) PayLoan(ctx context.Context, id, amount string) (bank.Entry, error) {
	id = normalizeID(id)
	value, err := utils.ParseAmount(amount)
	if err != nil {
		record(ctx, "pay_loan", err, "account", id, "amount", amount)
		return bank.Entry{}, err
	}

	e, err := ls.ledger.PayLoan(id, value)
	args := []any{"account", id, "amount", value.String()}
	if err == nil {
		args = append(args, "applied", e.Amount.Neg().String())
	}
	record(ctx, "pay_loan", err, args...)
	return e, err
}
