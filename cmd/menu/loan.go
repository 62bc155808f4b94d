package menu

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
)

func (r *menuRunner) requestCredit() error {
	id, err := prompts.PromptAccountNumber("Request credit for:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}
	snap, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}
	if snap.HasOutstandingLoan {
		pterm.Info.Printfln("Outstanding loan: %s", r.svc.Money(snap.OutstandingLoan))
	}

	amount, err := prompts.PromptAmount("Loan amount:", "Available credit: "+r.svc.Money(snap.CreditLimit), r.amount)
	if err != nil {
		return err
	}

	e, err := r.svc.Loan.RequestLoan(r.ctx, id, amount)
	if err != nil {
		return err
	}
	return views.RenderEntry(id, e, r.money)
}

func (r *menuRunner) payLoan() error {
	id, err := prompts.PromptAccountNumber("Pay loan for:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}
	snap, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}

	amount, err := prompts.PromptAmount("Payment amount:", "Outstanding: "+r.svc.Money(snap.OutstandingLoan), r.amount)
	if err != nil {
		return err
	}

	e, err := r.svc.Loan.PayLoan(r.ctx, id, amount)
	if err != nil {
		return err
	}

	after, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}
	outstanding := ""
	if after.HasOutstandingLoan {
		outstanding = r.svc.Money(after.OutstandingLoan)
	}
	return views.RenderLoanPayment(id, amount, e, outstanding, r.money)
}
