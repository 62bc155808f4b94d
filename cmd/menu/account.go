package menu

import (
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
)

func (r *menuRunner) createAccount() error {
	minimum := r.svc.Money(r.svc.Account.Policy().MinimumOpeningDeposit)
	in, err := prompts.PromptOpenAccount(minimum, r.money.Scale)
	if err != nil {
		return err
	}

	snap, err := r.svc.Account.OpenAccount(r.ctx, in)
	if err != nil {
		return err
	}
	return views.RenderAccountCreated(snap, r.money)
}

func (r *menuRunner) checkBalance() error {
	id, err := prompts.PromptAccountNumber("Account to check:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}

	snap, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}
	return views.RenderAccountInfo(snap, r.money)
}

func (r *menuRunner) history() error {
	id, err := prompts.PromptAccountNumber("Show history of:", r.svc.Account.GetAllAccounts())
	if err != nil {
		return err
	}

	h, err := r.svc.Account.GetHistory(id)
	if err != nil {
		return err
	}
	return views.RenderHistory(id, h, r.money)
}

func (r *menuRunner) listAccounts() error {
	return views.RenderAccountList(r.svc.Account.GetAllAccounts(), r.money)
}
