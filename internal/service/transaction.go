package service

import (
	"context"
	"fmt"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/utils"
)

type TransactionService struct {
	ledger Ledger
}

func NewTransactionService(ledger Ledger) *TransactionService {
	return &TransactionService{ledger: ledger}
}

func (ts *TransactionService) Deposit(ctx context.Context, id, amount string) (bank.Entry, error) {
	id = normalizeID(id)
	value, err := utils.ParseAmount(amount)
	if err != nil {
		record(ctx, "deposit", err, "account", id, "amount", amount)
		return bank.Entry{}, err
	}

	e, err := ts.ledger.Deposit(id, value)
	record(ctx, "deposit", err, "account", id, "amount", value.String())
	return e, err
}

func (ts *TransactionService) Withdraw(ctx context.Context, id, amount string) (bank.Entry, error) {
	id = normalizeID(id)
	value, err := utils.ParseAmount(amount)
	if err != nil {
		record(ctx, "withdraw", err, "account", id, "amount", amount)
		return bank.Entry{}, err
	}

	e, err := ts.ledger.Withdraw(id, value)
	record(ctx, "withdraw", err, "account", id, "amount", value.String())
	return e, err
}

// Transfer moves money between two accounts; both legs commit or neither does.
func (ts *TransactionService) Transfer(ctx context.Context, fromID, toID, amount string) (bank.Receipt, error) {
	fromID, toID = normalizeID(fromID), normalizeID(toID)
	value, err := utils.ParseAmount(amount)
	if err != nil {
		record(ctx, "transfer", err, "from", fromID, "to", toID, "amount", amount)
		return bank.Receipt{}, fmt.Errorf("transfer amount: %w", err)
	}

	rc, err := ts.ledger.Transfer(fromID, toID, value)
	args := []any{"from", fromID, "to", toID, "amount", value.String()}
	if err == nil {
		args = append(args, "reference", rc.Reference.String())
	}
	record(ctx, "transfer", err, args...)
	return rc, err
}
