package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/validation"
)

func setupService(t *testing.T, opts ...bank.Option) (*Service, context.Context) {
	t.Helper()
	reg, err := bank.NewRegistry(opts...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	ctx := logger.ToContext(context.Background(), logger.NewTestLogger())
	return NewService(reg, config.NewDefault()), ctx
}

func openAccount(t *testing.T, svc *Service, ctx context.Context, deposit string) string {
	t.Helper()
	snap, err := svc.Account.OpenAccount(ctx, OpenAccountInput{
		Holder:         "Almaz Tesfaye",
		Contact:        "+251911234567",
		Category:       "Savings",
		OpeningDeposit: deposit,
	})
	if err != nil {
		t.Fatalf("OpenAccount(%s) returned error: %v", deposit, err)
	}
	return snap.ID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOpenAccount(t *testing.T) {
	svc, ctx := setupService(t)

	snap, err := svc.Account.OpenAccount(ctx, OpenAccountInput{
		Holder:         "  Almaz Tesfaye ",
		Contact:        "0911234567",
		NationalID:     "ab1234",
		Category:       "Current",
		OpeningDeposit: "1,500.50",
	})
	if err != nil {
		t.Fatalf("OpenAccount returned error: %v", err)
	}
	if snap.ID != "ETH1001" || snap.Holder != "Almaz Tesfaye" || snap.NationalID != "AB1234" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !snap.Balance.Equal(dec("1500.50")) || snap.EntryCount != 1 {
		t.Fatalf("balance = %s, entries = %d", snap.Balance, snap.EntryCount)
	}
}

func TestOpenAccountRejectsBadInput(t *testing.T) {
	svc, ctx := setupService(t)

	_, err := svc.Account.OpenAccount(ctx, OpenAccountInput{Contact: "+251911234567", Category: "Savings", OpeningDeposit: "500"})
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("missing holder error = %v, want *ValidationError", err)
	}

	_, err = svc.Account.OpenAccount(ctx, OpenAccountInput{Holder: "A", Contact: "+251911234567", Category: "Savings", OpeningDeposit: "lots"})
	if !errors.Is(err, bank.ErrInvalidAmount) {
		t.Fatalf("bad deposit error = %v, want ErrInvalidAmount", err)
	}

	_, err = svc.Account.OpenAccount(ctx, OpenAccountInput{Holder: "A", Contact: "+251911234567", Category: "Savings", OpeningDeposit: "50"})
	if !errors.Is(err, bank.ErrInvalidAmount) {
		t.Fatalf("below minimum error = %v, want ErrInvalidAmount", err)
	}

	if n := len(svc.Account.GetAllAccounts()); n != 0 {
		t.Fatalf("accounts = %d, want 0", n)
	}
}

func TestTransactionService(t *testing.T) {
	svc, ctx := setupService(t)
	a := openAccount(t, svc, ctx, "300")
	b := openAccount(t, svc, ctx, "100")

	if _, err := svc.Transaction.Deposit(ctx, strings.ToLower(a), "50.25"); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if _, err := svc.Transaction.Withdraw(ctx, b, "50"); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if _, err := svc.Transaction.Withdraw(ctx, b, "abc"); !errors.Is(err, bank.ErrInvalidAmount) {
		t.Fatalf("Withdraw error = %v, want ErrInvalidAmount", err)
	}

	rc, err := svc.Transaction.Transfer(ctx, a, " "+b+" ", "150")
	if err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
	if rc.From != a || rc.To != b || !rc.Amount.Equal(dec("150")) {
		t.Fatalf("receipt = %+v", rc)
	}

	sa, _ := svc.Account.GetAccount(a)
	sb, _ := svc.Account.GetAccount(b)
	if !sa.Balance.Equal(dec("200.25")) || !sb.Balance.Equal(dec("200")) {
		t.Fatalf("balances = %s/%s, want 200.25/200", sa.Balance, sb.Balance)
	}
	if _, err := svc.Transaction.Transfer(ctx, a, a, "1"); !errors.Is(err, bank.ErrSameAccount) {
		t.Fatalf("self transfer error = %v, want ErrSameAccount", err)
	}

	h, err := svc.Account.GetHistory(b)
	if err != nil {
		t.Fatalf("GetHistory returned error: %v", err)
	}
	if last, _ := h.Last(); last.Kind != bank.KindTransferIn || last.Memo != "Transfer Received from "+a {
		t.Fatalf("last entry = %+v", last)
	}
}

func TestLoanService(t *testing.T) {
	svc, ctx := setupService(t)
	id := openAccount(t, svc, ctx, "500")

	if _, err := svc.Transaction.Withdraw(ctx, id, "200"); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	limit, err := svc.Loan.CreditLimit(id)
	if err != nil || !limit.Equal(dec("600")) {
		t.Fatalf("CreditLimit = %s, %v; want 600", limit, err)
	}
	if _, err := svc.Loan.RequestLoan(ctx, id, "700"); !errors.Is(err, bank.ErrCreditLimitExceeded) {
		t.Fatalf("RequestLoan error = %v, want ErrCreditLimitExceeded", err)
	}
	if _, err := svc.Loan.RequestLoan(ctx, id, "500"); err != nil {
		t.Fatalf("RequestLoan returned error: %v", err)
	}

	e, err := svc.Loan.PayLoan(ctx, id, "600")
	if err != nil {
		t.Fatalf("PayLoan returned error: %v", err)
	}
	if !e.Amount.Equal(dec("-500")) {
		t.Fatalf("applied = %s, want -500", e.Amount)
	}
	snap, _ := svc.Account.GetAccount(id)
	if !snap.Balance.Equal(dec("300")) || snap.HasOutstandingLoan {
		t.Fatalf("snapshot = %+v", snap)
	}
	if _, err := svc.Loan.PayLoan(ctx, id, "1"); !errors.Is(err, bank.ErrNoOutstandingLoan) {
		t.Fatalf("PayLoan error = %v, want ErrNoOutstandingLoan", err)
	}
}

func TestRejectedOperationsAreLoggedWithKind(t *testing.T) {
	svc, _ := setupService(t)
	var buf bytes.Buffer
	ctx := logger.ToContext(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	if _, err := svc.Transaction.Deposit(ctx, "ETH4040", "10"); err == nil {
		t.Fatal("Deposit to a missing account succeeded")
	}
	out := buf.String()
	for _, want := range []string{"level=WARN", "op=deposit", "account=ETH4040", "error_kind=AccountNotFound"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestAuditCleanLedger(t *testing.T) {
	svc, ctx := setupService(t)
	a := openAccount(t, svc, ctx, "300")
	b := openAccount(t, svc, ctx, "300")
	if _, err := svc.Transaction.Transfer(ctx, a, b, "12.34"); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
	if found := svc.Account.Audit(ctx); len(found) != 0 {
		t.Fatalf("Audit = %+v, want none", found)
	}
	if got := svc.Account.TotalHoldings(); got != "600" {
		t.Fatalf("TotalHoldings = %s, want 600", got)
	}
}

func TestMoney(t *testing.T) {
	svc, _ := setupService(t)
	if got := svc.Money(dec("1234.5")); got != "ETB 1,234.50" {
		t.Fatalf("Money = %q, want ETB 1,234.50", got)
	}
}

func TestMoneyFollowsLedgerScale(t *testing.T) {
	p := bank.DefaultPolicy()
	p.AmountScale = 3
	svc, ctx := setupService(t, bank.WithPolicy(p))
	id := openAccount(t, svc, ctx, "100")

	if err := validation.ValidateAmount(svc.Formatter().Scale)("1.005"); err != nil {
		t.Fatalf("ValidateAmount rejected an amount the ledger accepts: %v", err)
	}
	if _, err := svc.Transaction.Deposit(ctx, id, "1.005"); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	snap, _ := svc.Account.GetAccount(id)
	if got := svc.Money(snap.Balance); got != "ETB 101.005" {
		t.Fatalf("Money = %q, want ETB 101.005", got)
	}
}

// discrepantLedger reports a fixed audit result on top of a real registry.
type discrepantLedger struct {
	*bank.Registry
	found []bank.Discrepancy
}

func (l discrepantLedger) Audit() []bank.Discrepancy { return l.found }

func TestAuditLogsDiscrepanciesAtErrorLevel(t *testing.T) {
	reg, err := bank.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	ledger := discrepantLedger{Registry: reg, found: []bank.Discrepancy{{
		AccountID: "ETH1001",
		Balance:   dec("101"),
		Replayed:  dec("100"),
		Err:       fmt.Errorf("balance drifted: %w", bank.ErrLedgerCorrupt),
	}}}
	svc := NewService(ledger, config.NewDefault())

	var buf bytes.Buffer
	ctx := logger.ToContext(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	if found := svc.Account.Audit(ctx); len(found) != 1 {
		t.Fatalf("Audit = %+v, want one discrepancy", found)
	}
	out := buf.String()
	for _, want := range []string{"level=ERROR", "op=audit", "account=ETH1001", "replayed=100", "error_kind=LedgerCorrupt"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestOpenAccountInputLimitsMatchConstants(t *testing.T) {
	limits := map[string]int{
		"Holder":     constants.MaxNameLen,
		"Contact":    constants.MaxContactLen,
		"NationalID": constants.MaxNationalIDLen,
	}
	typ := reflect.TypeFor[OpenAccountInput]()
	for field, limit := range limits {
		f, ok := typ.FieldByName(field)
		if !ok {
			t.Fatalf("OpenAccountInput has no field %s", field)
		}
		if tag := f.Tag.Get("validate"); !strings.Contains(tag, fmt.Sprintf("max=%d", limit)) {
			t.Errorf("%s validate tag %q, want max=%d", field, tag, limit)
		}
	}
}
