package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
)

type simulateFlags struct {
	Accounts  int
	Workers   int
	Transfers int
	Deposit   string
	MaxAmount string
	Seed      uint64
}

type simulateRunner struct {
	app   *app.App
	flags *simulateFlags
}

func NewSimulateCmd(getApp func() *app.App) *cobra.Command {
	defaults := service.DefaultSimulationParams()
	flags := &simulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run concurrent random transfers and audit the result",
		Long: `Open a set of accounts and let several workers transfer random amounts
between them at the same time. The report shows how many transfers committed,
why the rest were rejected, and whether total holdings and every ledger still
reconcile afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &simulateRunner{
				app:   getApp(),
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Accounts, "accounts", "a", defaults.Accounts, "number of accounts to open")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", defaults.Workers, "number of concurrent workers")
	cmd.Flags().IntVarP(&flags.Transfers, "transfers", "t", defaults.Transfers, "total transfers to attempt")
	cmd.Flags().StringVar(&flags.Deposit, "deposit", defaults.OpeningDeposit.String(), "opening deposit of each account")
	cmd.Flags().StringVar(&flags.MaxAmount, "max-amount", defaults.MaxAmount.String(), "largest single transfer")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", defaults.Seed, "random seed")

	return cmd
}

func (r *simulateRunner) Run(cmd *cobra.Command) error {
	deposit, err := utils.ParseAmount(r.flags.Deposit)
	if err != nil {
		return fmt.Errorf("--deposit: %w", err)
	}
	maxAmount, err := utils.ParseAmount(r.flags.MaxAmount)
	if err != nil {
		return fmt.Errorf("--max-amount: %w", err)
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Running %d transfers on %d workers...", r.flags.Transfers, r.flags.Workers))
	report, err := r.app.Service.Simulation.Run(r.app.Context(cmd.Context()), service.SimulationParams{
		Accounts:       r.flags.Accounts,
		Workers:        r.flags.Workers,
		Transfers:      r.flags.Transfers,
		OpeningDeposit: deposit,
		MaxAmount:      maxAmount,
		Seed:           r.flags.Seed,
	})
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success("Simulation complete")

	if err := views.RenderSimulationReport(report, r.app.Service.Formatter()); err != nil {
		return err
	}
	if !report.Conserved() {
		return fmt.Errorf("ledger audit failed for %d accounts", len(report.Discrepancies))
	}
	return nil
}
