package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
)

// OpenAccountInput is the raw form data for a new account.
type OpenAccountInput struct {
	Holder         string `label:"holder name" validate:"required,max=100"`
	Contact        string `label:"contact" validate:"required,max=32,phone"`
	NationalID     string `label:"national ID" validate:"max=20,nationalid"`
	Category       string `label:"category" validate:"required,max=32"`
	OpeningDeposit string `label:"opening deposit" validate:"required"`
}

func (in OpenAccountInput) trimmed() OpenAccountInput {
	return OpenAccountInput{
		Holder:         strings.TrimSpace(in.Holder),
		Contact:        strings.TrimSpace(in.Contact),
		NationalID:     strings.ToUpper(strings.TrimSpace(in.NationalID)),
		Category:       strings.TrimSpace(in.Category),
		OpeningDeposit: strings.TrimSpace(in.OpeningDeposit),
	}
}

type AccountService struct {
	ledger    Ledger
	validator *validation.AccountValidator
}

func NewAccountService(ledger Ledger, v *validation.AccountValidator) *AccountService {
	return &AccountService{ledger: ledger, validator: v}
}

func (as *AccountService) OpenAccount(ctx context.Context, in OpenAccountInput) (bank.Snapshot, error) {
	in = in.trimmed()
	if err := as.validator.Struct(in); err != nil {
		record(ctx, "open_account", err, "holder", in.Holder)
		return bank.Snapshot{}, err
	}

	deposit, err := utils.ParseAmount(in.OpeningDeposit)
	if err != nil {
		record(ctx, "open_account", err, "holder", in.Holder)
		return bank.Snapshot{}, fmt.Errorf("opening deposit: %w", err)
	}

	id, err := as.ledger.OpenAccount(bank.OpenRequest{
		Holder:         in.Holder,
		Contact:        in.Contact,
		NationalID:     in.NationalID,
		Category:       in.Category,
		OpeningDeposit: deposit,
	})
	record(ctx, "open_account", err, "holder", in.Holder, "account", id, "amount", deposit.String())
	if err != nil {
		return bank.Snapshot{}, err
	}
	return as.GetAccount(id)
}

func (as *AccountService) Policy() bank.Policy {
	return as.ledger.Policy()
}

func (as *AccountService) GetAccount(id string) (bank.Snapshot, error) {
	acc, err := as.ledger.FindAccount(normalizeID(id))
	if err != nil {
		return bank.Snapshot{}, err
	}
	return acc.Snapshot(), nil
}

func (as *AccountService) GetAllAccounts() []bank.Snapshot {
	return as.ledger.Accounts()
}

// GetHistory returns the account's ledger in commit order.
func (as *AccountService) GetHistory(id string) (bank.History, error) {
	acc, err := as.ledger.FindAccount(normalizeID(id))
	if err != nil {
		return nil, err
	}
	return acc.History(), nil
}

func (as *AccountService) TotalHoldings() string {
	return as.ledger.TotalHoldings().String()
}

// Audit replays every ledger and logs each discrepancy at error level.
func (as *AccountService) Audit(ctx context.Context) []bank.Discrepancy {
	found := as.ledger.Audit()
	log := logger.FromContext(ctx).With("op", "audit")
	for _, d := range found {
		log.Error("ledger discrepancy",
			"account", d.AccountID,
			"balance", d.Balance.String(),
			"replayed", d.Replayed.String(),
			"error_kind", bank.Kind(d.Err),
			"error", d.Err)
	}
	return found
}
