package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/logger"
)

type SimulationParams struct {
	Accounts       int
	Workers        int
	Transfers      int
	OpeningDeposit decimal.Decimal
	// MaxAmount bounds each random transfer; amounts are whole minor units
	// of the ledger's scale in (0, MaxAmount].
	MaxAmount decimal.Decimal
	Seed      uint64
}

func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		Accounts:       10,
		Workers:        8,
		Transfers:      10000,
		OpeningDeposit: decimal.NewFromInt(1000),
		MaxAmount:      decimal.NewFromInt(250),
		Seed:           1,
	}
}

func (p SimulationParams) validate() error {
	switch {
	case p.Accounts < 2:
		return fmt.Errorf("simulation needs at least 2 accounts, got %d", p.Accounts)
	case p.Workers < 1:
		return fmt.Errorf("simulation needs at least 1 worker, got %d", p.Workers)
	case p.Transfers < 0:
		return fmt.Errorf("transfer count can't be negative: %d", p.Transfers)
	case !p.MaxAmount.IsPositive():
		return fmt.Errorf("max amount must be greater than zero: %s", p.MaxAmount)
	}
	return nil
}

type SimulationReport struct {
	Accounts       []string
	Workers        int
	Attempted      int
	Succeeded      int
	Rejected       map[string]int
	HoldingsBefore decimal.Decimal
	HoldingsAfter  decimal.Decimal
	Discrepancies  []bank.Discrepancy
	Elapsed        time.Duration
}

// Conserved reports whether no money was created or destroyed and every
// ledger replays to its balance.
func (r *SimulationReport) Conserved() bool {
	return r.HoldingsBefore.Equal(r.HoldingsAfter) && len(r.Discrepancies) == 0
}

// SimulationService drives concurrent random transfers against the ledger to
// exercise its atomicity under contention.
type SimulationService struct {
	ledger Ledger
}

func NewSimulationService(ledger Ledger) *SimulationService {
	return &SimulationService{ledger: ledger}
}

func (ss *SimulationService) Run(ctx context.Context, p SimulationParams) (*SimulationReport, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	log, ctx := logger.With(ctx, "op", "simulate")

	ids := make([]string, 0, p.Accounts)
	for i := range p.Accounts {
		id, err := ss.ledger.OpenAccount(bank.OpenRequest{
			Holder:         fmt.Sprintf("Simulated Holder %d", i+1),
			Category:       "Savings",
			OpeningDeposit: p.OpeningDeposit,
		})
		if err != nil {
			return nil, fmt.Errorf("opening simulation account %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	log.Debug("accounts opened", "count", len(ids))

	report := &SimulationReport{
		Accounts:       ids,
		Workers:        p.Workers,
		Rejected:       make(map[string]int),
		HoldingsBefore: ss.ledger.TotalHoldings(),
	}
	scale := ss.ledger.Policy().AmountScale
	maxUnits := p.MaxAmount.Shift(scale).IntPart()
	if maxUnits < 1 {
		maxUnits = 1
	}

	var mu sync.Mutex
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := range p.Workers {
		share := p.Transfers / p.Workers
		if w < p.Transfers%p.Workers {
			share++
		}

		g.Go(func() error {
			rng := rand.New(rand.NewPCG(p.Seed, uint64(w)))
			var ok int
			rejected := make(map[string]int)
			defer func() {
				mu.Lock()
				defer mu.Unlock()
				report.Succeeded += ok
				report.Attempted += ok
				for k, n := range rejected {
					report.Rejected[k] += n
					report.Attempted += n
				}
			}()

			for range share {
				if err := gctx.Err(); err != nil {
					return err
				}
				from := ids[rng.IntN(len(ids))]
				to := ids[rng.IntN(len(ids))]
				amount := decimal.New(rng.Int64N(maxUnits)+1, -scale)

				_, err := ss.ledger.Transfer(from, to, amount)
				switch kind := bank.Kind(err); {
				case err == nil:
					ok++
				case kind != "":
					rejected[kind]++
				default:
					return fmt.Errorf("transfer %s -> %s: %w", from, to, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	report.HoldingsAfter = ss.ledger.TotalHoldings()
	report.Discrepancies = ss.ledger.Audit()

	log.Info("simulation finished",
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"conserved", report.Conserved(),
		"elapsed", report.Elapsed)
	return report, nil
}
