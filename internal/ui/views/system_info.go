package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath            string
	AppDataDir            string
	BankName              string
	Currency              string
	AccountFormat         string
	MinimumOpeningDeposit string
	CreditMultiplier      string
	Overpayment           string
	LogLevel              string
}

func RenderSystemInfo(data SystemInfoItem) error {
	configPath := data.ConfigPath
	if configPath == "" {
		configPath = pterm.Red("Not Found (using defaults)")
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"AppData Directory", data.AppDataDir},
		{"Bank", data.BankName},
		{"Currency", data.Currency},
		{"Account Numbers", data.AccountFormat},
		{"Minimum Opening Deposit", data.MinimumOpeningDeposit},
		{"Credit Multiplier", data.CreditMultiplier + "x balance"},
		{"Loan Overpayment", data.Overpayment},
		{"Log Level", data.LogLevel},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
