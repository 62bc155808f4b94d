package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

// RenderEntry shows a single committed ledger entry with a success line.
func RenderEntry(accountID string, e bank.Entry, money utils.Money) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account"), accountID},
		{pterm.Blue("Type"), e.Kind.String()},
		{pterm.Blue("Amount"), ui.ColorBySign(e.Amount, money.Format(e.Amount.Abs()))},
		{pterm.Blue("New Balance"), money.Format(e.Balance)},
		{pterm.Blue("Time"), e.Time.Format(constants.DateTimeFormat)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printfln("%s completed", e.Kind)
	return nil
}

// RenderLoanPayment also reports when an overpayment was capped.
func RenderLoanPayment(accountID string, requested string, e bank.Entry, outstanding string, money utils.Money) error {
	if err := RenderEntry(accountID, e, money); err != nil {
		return err
	}

	applied := money.Format(e.Amount.Abs())
	if parsed, err := utils.ParseAmount(requested); err == nil && parsed.GreaterThan(e.Amount.Abs()) {
		pterm.Info.Printfln("Only %s was owed; the rest stays in the account", applied)
	}
	if outstanding == "" {
		pterm.Success.Println("Loan fully repaid")
	} else {
		pterm.Info.Printfln("Outstanding loan: %s", outstanding)
	}
	return nil
}
