package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/service"
)

type App struct {
	Service  *service.Service
	Registry *bank.Registry
	Logger   *slog.Logger
}

// NewApp builds the logger, an empty registry under the configured policy,
// and the services on top of it. Ledger state lives for the process only.
func NewApp(cfg *config.Config) (*App, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	registry, err := bank.NewRegistry(bank.WithPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	log := logger.New(cfg.Log.Level)
	log.Debug("ledger ready",
		"bank", cfg.Bank.Name,
		"prefix", policy.AccountPrefix,
		"overpayment", string(policy.Overpayment))

	return &App{
		Service:  service.NewService(registry, cfg),
		Registry: registry,
		Logger:   log,
	}, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logger.ToContext(ctx, a.Logger)
}
