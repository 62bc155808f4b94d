package bank

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryKind int

const (
	KindOpeningBalance EntryKind = iota + 1
	KindDeposit
	KindWithdrawal
	KindLoanDisbursement
	KindLoanPayment
	KindTransferOut
	KindTransferIn
)

func (k EntryKind) String() string {
	switch k {
	case KindOpeningBalance:
		return "Opening Balance"
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	case KindLoanDisbursement:
		return "Loan Disbursement"
	case KindLoanPayment:
		return "Loan Payment"
	case KindTransferOut:
		return "Transfer Out"
	case KindTransferIn:
		return "Transfer In"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// Entry is one committed balance-affecting event. Amount is signed: positive
// credits the account, negative debits it.
type Entry struct {
	ID           uuid.UUID
	Sequence     int
	Time         time.Time
	Kind         EntryKind
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	Counterparty string
	Reference    uuid.UUID
	Memo         string
}

// History is a read-only copy of an account's ledger in commit order.
type History []Entry

// All yields the entries in commit order. It can be ranged over any number of times.
func (h History) All() iter.Seq[Entry] {
	return slices.Values(h)
}

// Replay sums every signed amount starting from a zero balance.
func (h History) Replay() decimal.Decimal {
	total := decimal.Zero
	for _, e := range h {
		total = total.Add(e.Amount)
	}
	return total
}

// Verify checks that sequence numbers are contiguous and each resulting
// balance equals the previous one plus the entry amount.
func (h History) Verify() error {
	running := decimal.Zero
	for i, e := range h {
		if e.Sequence != i+1 {
			return fmt.Errorf("entry %d has sequence %d: %w", i+1, e.Sequence, ErrLedgerCorrupt)
		}
		running = running.Add(e.Amount)
		if !running.Equal(e.Balance) {
			return fmt.Errorf("entry %d records balance %s, replay gives %s: %w",
				e.Sequence, e.Balance, running, ErrLedgerCorrupt)
		}
		if running.IsNegative() {
			return fmt.Errorf("entry %d leaves a negative balance %s: %w", e.Sequence, running, ErrLedgerCorrupt)
		}
	}
	return nil
}

// Last returns the most recent entry, if any.
func (h History) Last() (Entry, bool) {
	if len(h) == 0 {
		return Entry{}, false
	}
	return h[len(h)-1], true
}
