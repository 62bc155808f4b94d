package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// environment is the registry-owned state every account consults.
type environment struct {
	policy Policy
	now    func() time.Time
	newID  func() uuid.UUID
}

// OpenRequest carries the details collected when an account is opened.
type OpenRequest struct {
	Holder         string
	Contact        string
	NationalID     string
	Category       string
	OpeningDeposit decimal.Decimal
}

// Account owns a balance, its ledger and its loan state. All methods are safe
// for concurrent use; every mutation holds the account lock for the whole
// validate-mutate-append step.
type Account struct {
	id         string
	seq        uint64
	holder     string
	contact    string
	nationalID string
	category   string
	openedAt   time.Time
	env        *environment

	mu      sync.Mutex
	balance decimal.Decimal
	loan    decimal.Decimal
	entries []Entry
}

// Snapshot is a point-in-time copy of an account for presentation.
type Snapshot struct {
	ID                 string
	Holder             string
	Contact            string
	NationalID         string
	Category           string
	OpenedAt           time.Time
	Balance            decimal.Decimal
	OutstandingLoan    decimal.Decimal
	HasOutstandingLoan bool
	CreditLimit        decimal.Decimal
	EntryCount         int
}

func openAccount(env *environment, id string, seq uint64, req OpenRequest) (*Account, error) {
	if req.OpeningDeposit.LessThan(env.policy.MinimumOpeningDeposit) {
		return nil, fmt.Errorf("opening deposit %s is below the minimum of %s: %w",
			req.OpeningDeposit, env.policy.MinimumOpeningDeposit, ErrInvalidAmount)
	}
	if err := env.policy.checkAmount(req.OpeningDeposit); err != nil {
		return nil, fmt.Errorf("opening deposit: %w", err)
	}

	now := env.now()
	a := &Account{
		id:         id,
		seq:        seq,
		holder:     req.Holder,
		contact:    req.Contact,
		nationalID: req.NationalID,
		category:   req.Category,
		openedAt:   now,
		env:        env,
		balance:    decimal.Zero,
		loan:       decimal.Zero,
	}
	a.post(KindOpeningBalance, req.OpeningDeposit, now, "", uuid.Nil, KindOpeningBalance.String())
	return a, nil
}

func (a *Account) ID() string          { return a.id }
func (a *Account) Holder() string      { return a.holder }
func (a *Account) Contact() string     { return a.contact }
func (a *Account) NationalID() string  { return a.nationalID }
func (a *Account) Category() string    { return a.category }
func (a *Account) OpenedAt() time.Time { return a.openedAt }

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) OutstandingLoan() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan
}

func (a *Account) HasOutstandingLoan() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.IsPositive()
}

// CreditLimit is the largest loan the account could take right now: zero while
// a loan is outstanding, otherwise the balance times the credit multiplier.
func (a *Account) CreditLimit() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.creditLimit()
}

func (a *Account) creditLimit() decimal.Decimal {
	if a.loan.IsPositive() {
		return decimal.Zero
	}
	return a.balance.Mul(a.env.policy.CreditMultiplier)
}

// History returns a copy of the ledger in commit order.
func (a *Account) History() History {
	a.mu.Lock()
	defer a.mu.Unlock()
	return History(append([]Entry(nil), a.entries...))
}

func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		ID:                 a.id,
		Holder:             a.holder,
		Contact:            a.contact,
		NationalID:         a.nationalID,
		Category:           a.category,
		OpenedAt:           a.openedAt,
		Balance:            a.balance,
		OutstandingLoan:    a.loan,
		HasOutstandingLoan: a.loan.IsPositive(),
		CreditLimit:        a.creditLimit(),
		EntryCount:         len(a.entries),
	}
}

func (a *Account) Deposit(amount decimal.Decimal) (Entry, error) {
	if err := a.env.policy.checkAmount(amount); err != nil {
		return Entry{}, fmt.Errorf("deposit to %s: %w", a.id, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.post(KindDeposit, amount, a.env.now(), "", uuid.Nil, KindDeposit.String()), nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (Entry, error) {
	if err := a.env.policy.checkAmount(amount); err != nil {
		return Entry{}, fmt.Errorf("withdraw from %s: %w", a.id, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return Entry{}, fmt.Errorf("withdraw %s from %s with balance %s: %w", amount, a.id, a.balance, ErrInsufficientFunds)
	}
	return a.post(KindWithdrawal, amount.Neg(), a.env.now(), "", uuid.Nil, KindWithdrawal.String()), nil
}

// RequestLoan disburses amount into the account when no loan is outstanding and
// amount does not exceed the credit limit at the moment of the request.
func (a *Account) RequestLoan(amount decimal.Decimal) (Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loan.IsPositive() {
		return Entry{}, fmt.Errorf("loan for %s (outstanding %s): %w", a.id, a.loan, ErrLoanAlreadyOutstanding)
	}
	if err := a.env.policy.checkAmount(amount); err != nil {
		return Entry{}, fmt.Errorf("loan for %s: %w", a.id, err)
	}
	if limit := a.creditLimit(); amount.GreaterThan(limit) {
		return Entry{}, fmt.Errorf("loan of %s for %s exceeds limit %s: %w", amount, a.id, limit, ErrCreditLimitExceeded)
	}

	a.loan = amount
	return a.post(KindLoanDisbursement, amount, a.env.now(), "", uuid.Nil, KindLoanDisbursement.String()), nil
}

// PayLoan repays the outstanding loan. The requested amount must be covered by
// the balance. Under OverpaymentCap only the outstanding part is applied; the
// returned entry records the applied amount.
func (a *Account) PayLoan(amount decimal.Decimal) (Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.loan.IsPositive() {
		return Entry{}, fmt.Errorf("loan payment for %s: %w", a.id, ErrNoOutstandingLoan)
	}
	if err := a.env.policy.checkAmount(amount); err != nil {
		return Entry{}, fmt.Errorf("loan payment for %s: %w", a.id, err)
	}
	if a.env.policy.Overpayment == OverpaymentReject && amount.GreaterThan(a.loan) {
		return Entry{}, fmt.Errorf("loan payment of %s exceeds outstanding %s for %s: %w", amount, a.loan, a.id, ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return Entry{}, fmt.Errorf("loan payment of %s from %s with balance %s: %w", amount, a.id, a.balance, ErrInsufficientFunds)
	}

	applied := decimal.Min(amount, a.loan)
	a.loan = a.loan.Sub(applied)
	return a.post(KindLoanPayment, applied.Neg(), a.env.now(), "", uuid.Nil, KindLoanPayment.String()), nil
}

// post applies a validated signed amount and appends its entry. The caller
// holds a.mu (or owns a not yet published account).
func (a *Account) post(kind EntryKind, amount decimal.Decimal, at time.Time, counterparty string, ref uuid.UUID, memo string) Entry {
	if last := len(a.entries); last > 0 && at.Before(a.entries[last-1].Time) {
		at = a.entries[last-1].Time
	}

	a.balance = a.balance.Add(amount)
	e := Entry{
		ID:           a.env.newID(),
		Sequence:     len(a.entries) + 1,
		Time:         at,
		Kind:         kind,
		Amount:       amount,
		Balance:      a.balance,
		Counterparty: counterparty,
		Reference:    ref,
		Memo:         memo,
	}
	a.entries = append(a.entries, e)
	return e
}

// auditState returns the balance and ledger under one lock acquisition.
func (a *Account) auditState() (decimal.Decimal, History) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, History(append([]Entry(nil), a.entries...))
}
