package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/validation"
)

// Ledger is the set of registry operations the services depend on.
// *bank.Registry satisfies it.
type Ledger interface {
	Policy() bank.Policy
	OpenAccount(req bank.OpenRequest) (string, error)
	FindAccount(id string) (*bank.Account, error)
	Deposit(id string, amount decimal.Decimal) (bank.Entry, error)
	Withdraw(id string, amount decimal.Decimal) (bank.Entry, error)
	RequestLoan(id string, amount decimal.Decimal) (bank.Entry, error)
	PayLoan(id string, amount decimal.Decimal) (bank.Entry, error)
	Transfer(fromID, toID string, amount decimal.Decimal) (bank.Receipt, error)
	Accounts() []bank.Snapshot
	TotalHoldings() decimal.Decimal
	Audit() []bank.Discrepancy
}

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Loan        *LoanService
	Simulation  *SimulationService

	config *config.Config
}

func NewService(ledger Ledger, cfg *config.Config) *Service {
	return &Service{
		Account:     NewAccountService(ledger, validation.NewAccountValidator()),
		Transaction: NewTransactionService(ledger),
		Loan:        NewLoanService(ledger),
		Simulation:  NewSimulationService(ledger),
		config:      cfg,
	}
}

func (s *Service) Config() *config.Config {
	return s.config
}

// normalizeID accepts account numbers typed in any case with stray spaces.
func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// record logs the outcome of a ledger mutation: committed ones at info,
// rejected ones at warn with their error kind.
func record(ctx context.Context, op string, err error, args ...any) {
	log := logger.FromContext(ctx).With(append([]any{"op", op}, args...)...)
	if err != nil {
		log.Warn("operation rejected", "error_kind", bank.Kind(err), "error", err)
		return
	}
	log.Info("operation committed")
}
