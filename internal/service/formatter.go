package service

import (
	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/utils"
)

// Formatter renders amounts in the configured currency at the ledger's scale.
func (s *Service) Formatter() utils.Money {
	return utils.Money{
		Currency: s.config.Defaults.Currency,
		Scale:    s.Account.Policy().AmountScale,
	}
}

// Money formats amount in the configured currency, e.g. "ETB 1,234.50".
func (s *Service) Money(amount decimal.Decimal) string {
	return s.Formatter().Format(amount)
}
