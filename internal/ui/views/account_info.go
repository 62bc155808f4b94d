package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

// RenderAccountInfo is the check-balance view.
func RenderAccountInfo(acc bank.Snapshot, money utils.Money) error {
	ui.Separator()

	nationalID := acc.NationalID
	if nationalID == "" {
		nationalID = "-"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.ID},
		{pterm.Blue("Holder"), acc.Holder},
		{pterm.Blue("Contact"), acc.Contact},
		{pterm.Blue("National ID"), nationalID},
		{pterm.Blue("Category"), acc.Category},
		{pterm.Blue("Opened"), acc.OpenedAt.Format(constants.DateTimeFormat)},
		{pterm.Blue("Balance"), pterm.Green(money.Format(acc.Balance))},
	}
	if acc.HasOutstandingLoan {
		tableData = append(tableData, []string{pterm.Blue("Outstanding Loan"), pterm.Red(money.Format(acc.OutstandingLoan))})
	} else {
		tableData = append(tableData, []string{pterm.Blue("Credit Available"), money.Format(acc.CreditLimit)})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountCreated(acc bank.Snapshot, money utils.Money) error {
	if err := RenderAccountInfo(acc, money); err != nil {
		return err
	}
	pterm.Success.Printfln("Account %s created successfully!", acc.ID)
	return nil
}
