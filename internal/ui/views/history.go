package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

func RenderHistory(accountID string, history bank.History, money utils.Money) error {
	if len(history) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printfln("Transaction History for %s", accountID)

	tableData := pterm.TableData{
		{"#", "Time", "Type", "Amount", "Balance", "Details"},
	}
	for e := range history.All() {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", e.Sequence),
			e.Time.Format(constants.DateTimeFormat),
			e.Kind.String(),
			ui.ColorBySign(e.Amount, money.Number(e.Amount)),
			money.Number(e.Balance),
			e.Memo,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	last, _ := history.Last()
	pterm.Info.Printfln("Total: %d transactions, balance %s", len(history), money.Format(last.Balance))
	return nil
}
