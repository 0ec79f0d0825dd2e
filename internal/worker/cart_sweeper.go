package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CartPurger exposes the subset of cart storage the sweeper needs.
type CartPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// CartSweeper periodically drops abandoned carts whose idle time
// exceeded the configured TTL.
type CartSweeper struct {
	carts  CartPurger
	period time.Duration
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartSweeper constructs the background cart sweeper.
func NewCartSweeper(carts CartPurger, period time.Duration, logger *slog.Logger) *CartSweeper {
	if period <= 0 {
		period = time.Minute
	}
	return &CartSweeper{
		carts:  carts,
		period: period,
		logger: logger,
	}
}

// Start launches background sweeping.
func (s *CartSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *CartSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CartSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CartSweeper) sweep(ctx context.Context) {
	purged, err := s.carts.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("cart sweep failed", slog.String("error", err.Error()))
		return
	}
	if purged > 0 {
		s.logger.Info("expired carts dropped", slog.Int("count", purged))
	}
}
