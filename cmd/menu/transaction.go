package menu

import (
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
)

func (r *menuRunner) deposit() error {
	id, err := prompts.PromptAccountNumber("Deposit to:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}
	amount, err := prompts.PromptAmount("Amount to deposit:", "", r.amount)
	if err != nil {
		return err
	}

	e, err := r.svc.Transaction.Deposit(r.ctx, id, amount)
	if err != nil {
		return err
	}
	return views.RenderEntry(id, e, r.money)
}

func (r *menuRunner) withdraw() error {
	id, err := prompts.PromptAccountNumber("Withdraw from:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}
	snap, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}

	amount, err := prompts.PromptAmount("Amount to withdraw:", "Available: "+r.svc.Money(snap.Balance), r.amount)
	if err != nil {
		return err
	}

	e, err := r.svc.Transaction.Withdraw(r.ctx, id, amount)
	if err != nil {
		return err
	}
	return views.RenderEntry(id, e, r.money)
}

func (r *menuRunner) transfer() error {
	in, err := prompts.PromptTransfer(r.svc.Account.GetAllAccounts(), r.money.Scale)
	if err != nil {
		return err
	}

	rc, err := r.svc.Transaction.Transfer(r.ctx, in.From, in.To, in.Amount)
	if err != nil {
		return err
	}
	return views.RenderTransferReceipt(rc, r.money)
}
