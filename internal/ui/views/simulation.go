package views

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
)

func RenderSimulationReport(r *service.SimulationReport, money utils.Money) error {
	pterm.DefaultSection.Println("Simulation Report")

	tableData := pterm.TableData{
		{"Accounts", fmt.Sprintf("%d", len(r.Accounts))},
		{"Workers", fmt.Sprintf("%d", r.Workers)},
		{"Transfers attempted", fmt.Sprintf("%d", r.Attempted)},
		{"Transfers committed", pterm.Green(fmt.Sprintf("%d", r.Succeeded))},
		{"Holdings before", money.Format(r.HoldingsBefore)},
		{"Holdings after", money.Format(r.HoldingsAfter)},
		{"Elapsed", r.Elapsed.String()},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if len(r.Rejected) > 0 {
		pterm.Println()
		ui.PrintL2Title("Rejections")

		kinds := make([]string, 0, len(r.Rejected))
		for k := range r.Rejected {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		rejected := pterm.TableData{{"Error", "Count"}}
		for _, k := range kinds {
			rejected = append(rejected, []string{k, fmt.Sprintf("%d", r.Rejected[k])})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rejected).Render(); err != nil {
			return err
		}
	}

	pterm.Println()
	if r.Conserved() {
		pterm.Success.Println("Money conserved and every ledger replays to its balance")
		return nil
	}
	for _, d := range r.Discrepancies {
		pterm.Error.Printfln("%s: %v", d.AccountID, d.Err)
	}
	pterm.Error.Printfln("Holdings changed from %s to %s",
		money.Format(r.HoldingsBefore), money.Format(r.HoldingsAfter))
	return nil
}
