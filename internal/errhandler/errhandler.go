package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/validation"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Describe(err))
}

// Describe turns an error into a message for the person at the terminal.
func Describe(err error) string {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return "Invalid details: " + verr.Error()
	}

	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Invalid amount: " + err.Error()
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds: " + err.Error()
	case errors.Is(err, bank.ErrAccountNotFound):
		return "Account not found: " + err.Error()
	case errors.Is(err, bank.ErrSameAccount):
		return "Cannot transfer to the same account"
	case errors.Is(err, bank.ErrLoanAlreadyOutstanding):
		return "A loan is already outstanding; repay it before requesting another"
	case errors.Is(err, bank.ErrNoOutstandingLoan):
		return "This account has no outstanding loan"
	case errors.Is(err, bank.ErrCreditLimitExceeded):
		return "Credit limit exceeded: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
