package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

func RenderTransferReceipt(rc bank.Receipt, money utils.Money) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Reference"), rc.Reference.String()},
		{pterm.Blue("From"), rc.From},
		{pterm.Blue("To"), rc.To},
		{pterm.Blue("Amount"), money.Format(rc.Amount)},
		{pterm.Blue("Time"), rc.Time.Format(constants.DateTimeFormat)},
		{pterm.Blue(rc.From + " Balance"), money.Format(rc.Out.Balance)},
		{pterm.Blue(rc.To + " Balance"), money.Format(rc.In.Balance)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Println("Transfer completed")
	return nil
}
