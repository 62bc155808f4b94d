package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
)

type Config struct {
	Bank       BankConfig     `mapstructure:"bank"`
	Loan       LoanConfig     `mapstructure:"loan"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type BankConfig struct {
	Name                  string `mapstructure:"name"`
	AccountPrefix         string `mapstructure:"account_prefix"`
	FirstAccountNumber    uint64 `mapstructure:"first_account_number"`
	MinimumOpeningDeposit string `mapstructure:"minimum_opening_deposit"`
	AmountScale           int32  `mapstructure:"amount_scale"`
}

type LoanConfig struct {
	CreditMultiplier string `mapstructure:"credit_multiplier"`
	Overpayment      string `mapstructure:"overpayment"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	p := bank.DefaultPolicy()
	return &Config{
		Bank: BankConfig{
			Name:                  constants.DefaultBankName,
			AccountPrefix:         p.AccountPrefix,
			FirstAccountNumber:    p.FirstAccountNumber,
			MinimumOpeningDeposit: p.MinimumOpeningDeposit.String(),
			AmountScale:           p.AmountScale,
		},
		Loan: LoanConfig{
			CreditMultiplier: p.CreditMultiplier.String(),
			Overpayment:      string(p.Overpayment),
		},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "info"},
	}
}

// Policy converts the configured rules into a bank policy.
func (c *Config) Policy() (bank.Policy, error) {
	minDeposit, err := decimal.NewFromString(c.Bank.MinimumOpeningDeposit)
	if err != nil {
		return bank.Policy{}, fmt.Errorf("bank.minimum_opening_deposit %q: %w", c.Bank.MinimumOpeningDeposit, err)
	}
	multiplier, err := decimal.NewFromString(c.Loan.CreditMultiplier)
	if err != nil {
		return bank.Policy{}, fmt.Errorf("loan.credit_multiplier %q: %w", c.Loan.CreditMultiplier, err)
	}
	if c.Bank.AccountPrefix == "" {
		return bank.Policy{}, fmt.Errorf("bank.account_prefix can't be empty")
	}

	p := bank.Policy{
		MinimumOpeningDeposit: minDeposit,
		CreditMultiplier:      multiplier,
		Overpayment:           bank.OverpaymentPolicy(c.Loan.Overpayment),
		AmountScale:           c.Bank.AmountScale,
		AccountPrefix:         c.Bank.AccountPrefix,
		FirstAccountNumber:    c.Bank.FirstAccountNumber,
	}
	if err := p.Validate(); err != nil {
		return bank.Policy{}, err
	}
	return p, nil
}
