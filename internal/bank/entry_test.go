package bank

import (
	"errors"
	"testing"
)

func TestEntryKindString(t *testing.T) {
	tests := map[EntryKind]string{
		KindOpeningBalance:   "Opening Balance",
		KindDeposit:          "Deposit",
		KindWithdrawal:       "Withdrawal",
		KindLoanDisbursement: "Loan Disbursement",
		KindLoanPayment:      "Loan Payment",
		KindTransferOut:      "Transfer Out",
		KindTransferIn:       "Transfer In",
		EntryKind(42):        "EntryKind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("EntryKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestHistoryVerify(t *testing.T) {
	good := History{
		{Sequence: 1, Amount: d("100"), Balance: d("100")},
		{Sequence: 2, Amount: d("-40"), Balance: d("60")},
		{Sequence: 3, Amount: d("15.5"), Balance: d("75.5")},
	}
	if err := good.Verify(); err != nil {
		t.Fatalf("Verify returned error on a valid ledger: %v", err)
	}
	if got := good.Replay(); !got.Equal(d("75.5")) {
		t.Fatalf("Replay = %s, want 75.5", got)
	}
	if last, ok := good.Last(); !ok || last.Sequence != 3 {
		t.Fatalf("Last = %+v/%v, want sequence 3", last, ok)
	}

	tests := map[string]History{
		"sequence gap": {
			{Sequence: 1, Amount: d("100"), Balance: d("100")},
			{Sequence: 3, Amount: d("1"), Balance: d("101")},
		},
		"wrong running balance": {
			{Sequence: 1, Amount: d("100"), Balance: d("100")},
			{Sequence: 2, Amount: d("1"), Balance: d("100")},
		},
		"negative balance": {
			{Sequence: 1, Amount: d("100"), Balance: d("100")},
			{Sequence: 2, Amount: d("-101"), Balance: d("-1")},
		},
	}
	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			if err := h.Verify(); !errors.Is(err, ErrLedgerCorrupt) {
				t.Fatalf("Verify error = %v, want ErrLedgerCorrupt", err)
			}
		})
	}
}

func TestHistoryEmpty(t *testing.T) {
	var h History
	if err := h.Verify(); err != nil {
		t.Fatalf("Verify on empty history returned error: %v", err)
	}
	if !h.Replay().IsZero() {
		t.Fatalf("Replay = %s, want 0", h.Replay())
	}
	if _, ok := h.Last(); ok {
		t.Fatal("Last reported an entry on an empty history")
	}
}

func TestPolicyCheckAmount(t *testing.T) {
	p := DefaultPolicy()
	valid := []string{"0.01", "1", "100.5", "100.50", "999999999.99"}
	invalid := []string{"0", "-0.01", "0.001", "1.999"}

	for _, s := range valid {
		if err := p.checkAmount(d(s)); err != nil {
			t.Errorf("checkAmount(%s) returned error: %v", s, err)
		}
	}
	for _, s := range invalid {
		if err := p.checkAmount(d(s)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("checkAmount(%s) error = %v, want ErrInvalidAmount", s, err)
		}
	}
}

func TestAuditDetectsTamperedLedger(t *testing.T) {
	r := newTestRegistry(t)
	acc := openTestAccount(t, r, "100")
	openTestAccount(t, r, "200")

	acc.mu.Lock()
	acc.balance = acc.balance.Add(d("1"))
	acc.mu.Unlock()

	found := r.Audit()
	if len(found) != 1 || found[0].AccountID != acc.ID() {
		t.Fatalf("Audit = %+v, want one discrepancy for %s", found, acc.ID())
	}
	if !errors.Is(found[0].Err, ErrLedgerCorrupt) {
		t.Fatalf("discrepancy error = %v, want ErrLedgerCorrupt", found[0].Err)
	}
}
