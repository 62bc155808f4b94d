package menu

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
)

type menuRunner struct {
	svc    *service.Service
	ctx    context.Context
	money  utils.Money
	amount func(string) error
}

func NewMenuCmd(getApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start an interactive teller session",
		Long: `Open accounts, move money, and manage loans from an interactive menu.
Everything is kept in memory and discarded when the session ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			money := a.Service.Formatter()
			runner := &menuRunner{
				svc:    a.Service,
				ctx:    a.Context(cmd.Context()),
				money:  money,
				amount: validation.ValidateAmount(money.Scale),
			}
			return runner.Run()
		},
	}
}

func (r *menuRunner) Run() error {
	ui.PrintL1Title("Welcome to %s", r.svc.Config().Bank.Name)

	actions := map[string]func() error{
		constants.MenuCreateAccount: r.createAccount,
		constants.MenuDeposit:       r.deposit,
		constants.MenuWithdraw:      r.withdraw,
		constants.MenuCheckBalance:  r.checkBalance,
		constants.MenuRequestCredit: r.requestCredit,
		constants.MenuPayLoan:       r.payLoan,
		constants.MenuHistory:       r.history,
		constants.MenuTransfer:      r.transfer,
		constants.MenuListAccounts:  r.listAccounts,
	}

	for {
		pterm.Println()
		choice, err := prompts.PromptMainMenu(r.svc.Config().Bank.Name)
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}
		if choice == constants.MenuExit {
			pterm.Info.Printfln("Thank you for banking with %s", r.svc.Config().Bank.Name)
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			continue
		}
		r.report(action())
	}
}

// report prints the outcome of one menu action. Errors never end the session.
func (r *menuRunner) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, prompts.ErrNoAccounts):
		pterm.Warning.Println("No accounts yet. Choose \"" + constants.MenuCreateAccount + "\" first.")
	case errhandler.IsCancelled(err):
		pterm.Warning.Println("Operation Cancelled")
	default:
		pterm.Error.Println(errhandler.Describe(err))
	}
}
