package bank

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountNotFound        = errors.New("account not found")
	ErrSameAccount            = errors.New("source and destination account are the same")
	ErrLoanAlreadyOutstanding = errors.New("loan already outstanding")
	ErrNoOutstandingLoan      = errors.New("no outstanding loan")
	ErrCreditLimitExceeded    = errors.New("credit limit exceeded")
	ErrLedgerCorrupt          = errors.New("ledger corrupt")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrAccountNotFound, "AccountNotFound"},
	{ErrSameAccount, "SameAccount"},
	{ErrLoanAlreadyOutstanding, "LoanAlreadyOutstanding"},
	{ErrNoOutstandingLoan, "NoOutstandingLoan"},
	{ErrCreditLimitExceeded, "CreditLimitExceeded"},
	{ErrLedgerCorrupt, "LedgerCorrupt"},
}

// Kind returns the taxonomy name of err, or "" when err is not a ledger error.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
