package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/teller/cmd/menu"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
)

var (
	cfgFile     string
	logLevel    string
	cfg         *config.Config
	application *app.App
)

func getApp() *app.App {
	return application
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is an in-memory bank ledger with an interactive teller menu",
		Long: `teller keeps accounts, their ledgers and loans in memory for the length
of a session. Use "teller menu" for the interactive teller, "teller demo"
for the reference scenarios and "teller simulate" to stress concurrent
transfers.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			var err error
			application, err = app.NewApp(cfg)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(menu.NewMenuCmd(getApp))
	rootCmd.AddCommand(NewDemoCmd(getApp))
	rootCmd.AddCommand(NewSimulateCmd(getApp))
	rootCmd.AddCommand(NewInfoCmd(getApp))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func initConfig() error {
	viper.Reset()
	setDefaults(config.NewDefault())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// setDefaults registers every key so env overrides work without a config
// file and a freshly written config.yaml lists them all.
func setDefaults(d *config.Config) {
	viper.SetDefault("bank.name", d.Bank.Name)
	viper.SetDefault("bank.account_prefix", d.Bank.AccountPrefix)
	viper.SetDefault("bank.first_account_number", d.Bank.FirstAccountNumber)
	viper.SetDefault("bank.minimum_opening_deposit", d.Bank.MinimumOpeningDeposit)
	viper.SetDefault("bank.amount_scale", d.Bank.AmountScale)
	viper.SetDefault("loan.credit_multiplier", d.Loan.CreditMultiplier)
	viper.SetDefault("loan.overpayment", d.Loan.Overpayment)
	viper.SetDefault("defaults.currency", d.Defaults.Currency)
	viper.SetDefault("log.level", d.Log.Level)
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
