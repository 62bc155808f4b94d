package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(getApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the configuration file in use and the ledger policy it produces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: getApp(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	c := r.app.Service.Config()
	policy := r.app.Registry.Policy()

	items := views.SystemInfoItem{
		ConfigPath:            c.ConfigPath,
		AppDataDir:            getAppDataDirOrUnknown(),
		BankName:              c.Bank.Name,
		Currency:              c.Defaults.Currency,
		AccountFormat:         fmt.Sprintf("%s%d, %s%d, ...", policy.AccountPrefix, policy.FirstAccountNumber, policy.AccountPrefix, policy.FirstAccountNumber+1),
		MinimumOpeningDeposit: r.app.Service.Money(policy.MinimumOpeningDeposit),
		CreditMultiplier:      policy.CreditMultiplier.String(),
		Overpayment:           string(policy.Overpayment),
		LogLevel:              c.Log.Level,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
