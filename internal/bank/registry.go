// Package bank is the in-memory ledger core: accounts with an append-only
// ledger, loan underwriting and atomic transfers between accounts.
package bank

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registry is the sole owner of its accounts. It issues account numbers and is
// the only component that holds two account locks at once.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	order    []*Account
	next     uint64
	env      *environment
}

type Option func(*Registry)

func WithPolicy(p Policy) Option {
	return func(r *Registry) { r.env.policy = p }
}

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.env.now = now }
}

func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		accounts: make(map[string]*Account),
		env: &environment{
			policy: DefaultPolicy(),
			now:    time.Now,
			newID:  uuid.New,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.env.policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bank policy: %w", err)
	}
	r.next = r.env.policy.FirstAccountNumber
	return r, nil
}

func (r *Registry) Policy() Policy {
	return r.env.policy
}

// OpenAccount creates an account and returns its number. A rejected opening
// does not consume a number.
func (r *Registry) OpenAccount(req OpenRequest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.env.policy.AccountPrefix + strconv.FormatUint(r.next, 10)
	acc, err := openAccount(r.env, id, r.next, req)
	if err != nil {
		return "", err
	}

	r.accounts[id] = acc
	r.order = append(r.order, acc)
	r.next++
	return id, nil
}

func (r *Registry) FindAccount(id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", id, ErrAccountNotFound)
	}
	return acc, nil
}

func (r *Registry) Deposit(id string, amount decimal.Decimal) (Entry, error) {
	acc, err := r.FindAccount(id)
	if err != nil {
		return Entry{}, err
	}
	return acc.Deposit(amount)
}

func (r *Registry) Withdraw(id string, amount decimal.Decimal) (Entry, error) {
	acc, err := r.FindAccount(id)
	if err != nil {
		return Entry{}, err
	}
	return acc.Withdraw(amount)
}

func (r *Registry) RequestLoan(id string, amount decimal.Decimal) (Entry, error) {
	acc, err := r.FindAccount(id)
	if err != nil {
		return Entry{}, err
	}
	return acc.RequestLoan(amount)
}

func (r *Registry) PayLoan(id string, amount decimal.Decimal) (Entry, error) {
	acc, err := r.FindAccount(id)
	if err != nil {
		return Entry{}, err
	}
	return acc.PayLoan(amount)
}

// Receipt describes a committed transfer. Out and In share Reference.
type Receipt struct {
	Reference uuid.UUID
	From      string
	To        string
	Amount    decimal.Decimal
	Time      time.Time
	Out       Entry
	In        Entry
}

// Transfer moves amount from one account to another. Both account locks are
// taken in opening order before either side is touched, so concurrent transfers
// in opposite directions cannot deadlock and no caller sees one leg without the
// other.
func (r *Registry) Transfer(fromID, toID string, amount decimal.Decimal) (Receipt, error) {
	from, err := r.FindAccount(fromID)
	if err != nil {
		return Receipt{}, fmt.Errorf("transfer source: %w", err)
	}
	to, err := r.FindAccount(toID)
	if err != nil {
		return Receipt{}, fmt.Errorf("transfer destination: %w", err)
	}
	if from == to {
		return Receipt{}, fmt.Errorf("transfer from %s to %s: %w", fromID, toID, ErrSameAccount)
	}
	if err := r.env.policy.checkAmount(amount); err != nil {
		return Receipt{}, fmt.Errorf("transfer from %s to %s: %w", fromID, toID, err)
	}

	first, second := from, to
	if second.seq < first.seq {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if amount.GreaterThan(from.balance) {
		return Receipt{}, fmt.Errorf("transfer %s from %s with balance %s: %w", amount, from.id, from.balance, ErrInsufficientFunds)
	}

	at := r.env.now()
	ref := r.env.newID()
	out := from.post(KindTransferOut, amount.Neg(), at, to.id, ref, "Transfer Sent to "+to.id)
	in := to.post(KindTransferIn, amount, at, from.id, ref, "Transfer Received from "+from.id)

	return Receipt{
		Reference: ref,
		From:      from.id,
		To:        to.id,
		Amount:    amount,
		Time:      out.Time,
		Out:       out,
		In:        in,
	}, nil
}

// Accounts returns snapshots of every account in opening order.
func (r *Registry) Accounts() []Snapshot {
	accounts := r.ordered()
	out := make([]Snapshot, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc.Snapshot())
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// TotalHoldings sums every balance over a consistent cut: all account locks
// are held, in opening order, while summing.
func (r *Registry) TotalHoldings() decimal.Decimal {
	accounts := r.ordered()
	for _, acc := range accounts {
		acc.mu.Lock()
	}
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.balance)
	}
	for i := len(accounts) - 1; i >= 0; i-- {
		accounts[i].mu.Unlock()
	}
	return total
}

// Discrepancy reports an account whose ledger does not reproduce its balance.
type Discrepancy struct {
	AccountID string
	Balance   decimal.Decimal
	Replayed  decimal.Decimal
	Err       error
}

// Audit replays every ledger and returns the accounts that fail to reconcile.
func (r *Registry) Audit() []Discrepancy {
	var found []Discrepancy
	for _, acc := range r.ordered() {
		balance, history := acc.auditState()
		replayed := history.Replay()

		err := history.Verify()
		if err == nil && !replayed.Equal(balance) {
			err = fmt.Errorf("balance %s, replayed %s: %w", balance, replayed, ErrLedgerCorrupt)
		}
		if err != nil {
			found = append(found, Discrepancy{
				AccountID: acc.id,
				Balance:   balance,
				Replayed:  replayed,
				Err:       err,
			})
		}
	}
	return found
}

func (r *Registry) ordered() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Account(nil), r.order...)
}
