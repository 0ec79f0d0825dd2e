package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type purgerStub struct {
	calls atomic.Int64
	err   error
}

func (p *purgerStub) PurgeExpired(ctx context.Context) (int, error) {
	p.calls.Add(1)
	if p.err != nil {
		return 0, p.err
	}
	return 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestCartSweeperSweeps(t *testing.T) {
	purger := &purgerStub{}
	sweeper := NewCartSweeper(purger, 10*time.Millisecond, discardLogger())

	sweeper.Start(context.Background())
	deadline := time.After(2 * time.Second)
	for purger.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected at least one sweep")
		case <-time.After(5 * time.Millisecond):
		}
	}
	sweeper.Stop()

	// No sweeps after Stop returns.
	settled := purger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if purger.calls.Load() != settled {
		t.Fatalf("sweeper kept running after stop")
	}
}

func TestCartSweeperSurvivesErrors(t *testing.T) {
	purger := &purgerStub{err: errors.New("store down")}
	sweeper := NewCartSweeper(purger, 10*time.Millisecond, discardLogger())

	sweeper.Start(context.Background())
	deadline := time.After(2 * time.Second)
	for purger.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("expected sweeper to keep ticking after an error")
		case <-time.After(5 * time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestCartSweeperDefaultPeriod(t *testing.T) {
	sweeper := NewCartSweeper(&purgerStub{}, 0, discardLogger())
	if sweeper.period != time.Minute {
		t.Fatalf("expected default period, got %v", sweeper.period)
	}
}

func TestCartSweeperStopWithoutStart(t *testing.T) {
	sweeper := NewCartSweeper(&purgerStub{}, time.Minute, discardLogger())
	sweeper.Stop()
}
