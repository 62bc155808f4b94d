package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
)

type demoStep struct {
	title string
	// wantKind is the error kind the step is expected to fail with, or "".
	wantKind string
	run      func() (string, error)
}

type demoRunner struct {
	app *app.App
	ctx context.Context
}

func NewDemoCmd(getApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the loan and transfer reference scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			runner := &demoRunner{
				app: a,
				ctx: a.Context(cmd.Context()),
			}
			return runner.Run()
		},
	}
}

func (r *demoRunner) Run() error {
	svc := r.app.Service
	failed := 0

	ui.PrintL1Title("Scenario 1: loan lifecycle")
	failed += r.runSteps(r.loanScenario(svc))

	pterm.Println()
	ui.PrintL1Title("Scenario 2: transfers")
	failed += r.runSteps(r.transferScenario(svc))

	pterm.Println()
	if err := views.RenderAccountList(svc.Account.GetAllAccounts(), svc.Formatter()); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d demo steps did not behave as expected", failed)
	}
	return nil
}

func (r *demoRunner) loanScenario(svc *service.Service) []demoStep {
	var id string
	return []demoStep{
		{title: "Open account with 500", run: func() (string, error) {
			snap, err := svc.Account.OpenAccount(r.ctx, service.OpenAccountInput{
				Holder: "Abebe Bikila", Contact: "+251911000001", Category: "Savings", OpeningDeposit: "500",
			})
			id = snap.ID
			return r.balance(id), err
		}},
		{title: "Withdraw 200", run: func() (string, error) {
			_, err := svc.Transaction.Withdraw(r.ctx, id, "200")
			return r.balance(id), err
		}},
		{title: "Request loan of 700", wantKind: "CreditLimitExceeded", run: func() (string, error) {
			_, err := svc.Loan.RequestLoan(r.ctx, id, "700")
			return r.balance(id), err
		}},
		{title: "Request loan of 500", run: func() (string, error) {
			_, err := svc.Loan.RequestLoan(r.ctx, id, "500")
			return r.balance(id), err
		}},
		{title: "Pay 600 towards the loan", run: func() (string, error) {
			e, err := svc.Loan.PayLoan(r.ctx, id, "600")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("applied %s, %s", svc.Money(e.Amount.Abs()), r.balance(id)), nil
		}},
	}
}

func (r *demoRunner) transferScenario(svc *service.Service) []demoStep {
	var a, b string
	open := func(holder, deposit string) (string, error) {
		snap, err := svc.Account.OpenAccount(r.ctx, service.OpenAccountInput{
			Holder: holder, Contact: "+251911000002", Category: "Current", OpeningDeposit: deposit,
		})
		return snap.ID, err
	}

	return []demoStep{
		{title: "Open account A with 300", run: func() (string, error) {
			var err error
			a, err = open("Tirunesh Dibaba", "300")
			return r.balance(a), err
		}},
		{title: "Open account B with 100, withdraw 50", run: func() (string, error) {
			var err error
			if b, err = open("Haile Gebrselassie", "100"); err != nil {
				return "", err
			}
			_, err = svc.Transaction.Withdraw(r.ctx, b, "50")
			return r.balance(b), err
		}},
		{title: "Transfer 150 from A to B", run: func() (string, error) {
			_, err := svc.Transaction.Transfer(r.ctx, a, b, "150")
			return r.balance(a) + ", " + r.balance(b), err
		}},
		{title: "Transfer 10 from A to A", wantKind: "SameAccount", run: func() (string, error) {
			_, err := svc.Transaction.Transfer(r.ctx, a, a, "10")
			return r.balance(a), err
		}},
	}
}

// runSteps renders each step's outcome and returns how many deviated from
// what was expected.
func (r *demoRunner) runSteps(steps []demoStep) int {
	tableData := pterm.TableData{{"Step", "Outcome", "State"}}
	failed := 0

	for _, s := range steps {
		state, err := s.run()
		kind := bank.Kind(err)

		var outcome string
		switch {
		case err == nil && s.wantKind == "":
			outcome = pterm.Green("ok")
		case err != nil && s.wantKind != "" && kind == s.wantKind:
			outcome = pterm.Yellow("rejected: " + kind)
		default:
			failed++
			outcome = pterm.Red(fmt.Sprintf("unexpected: %v", err))
		}
		tableData = append(tableData, []string{s.title, outcome, state})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
	}
	return failed
}

func (r *demoRunner) balance(id string) string {
	snap, err := r.app.Service.Account.GetAccount(id)
	if err != nil {
		return "-"
	}
	s := fmt.Sprintf("%s: %s", snap.ID, r.app.Service.Money(snap.Balance))
	if snap.HasOutstandingLoan {
		s += fmt.Sprintf(" (loan %s)", r.app.Service.Money(snap.OutstandingLoan))
	}
	return s
}
