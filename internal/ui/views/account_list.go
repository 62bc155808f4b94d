package views

import (
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/utils"
)

func RenderAccountList(accounts []bank.Snapshot, money utils.Money) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	pterm.DefaultSection.Println("Account List")
	tableData := pterm.TableData{{"Number", "Holder", "Category", "Balance", "Loan"}}

	total := decimal.Zero
	for _, acc := range accounts {
		loan := "-"
		if acc.HasOutstandingLoan {
			loan = pterm.Red(money.Format(acc.OutstandingLoan))
		}
		tableData = append(tableData, []string{
			acc.ID,
			acc.Holder,
			acc.Category,
			pterm.Green(money.Format(acc.Balance)),
			loan,
		})
		total = total.Add(acc.Balance)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("Total: %d accounts holding %s", len(accounts), money.Format(total))
	return nil
}
