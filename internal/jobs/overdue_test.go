package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	domain "tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/testutil/duemock"
	"tradecredit-backend/internal/testutil/profilemock"
	"tradecredit-backend/internal/usecase/ledger"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunOnce_PromotesWithCurrentTime(t *testing.T) {
	var gotAsOf time.Time
	dues := &duemock.Repo{
		PromoteOverdueFn: func(ctx context.Context, asOf time.Time) (int64, error) {
			gotAsOf = asOf
			return 2, nil
		},
	}
	s := NewOverdueSweeper(ledger.NewUsecase(dues, &profilemock.Repo{}, nil), quietLogger())

	s.RunOnce(context.Background())
	if gotAsOf.IsZero() {
		t.Fatal("sweep did not run")
	}
	if d := time.Since(gotAsOf); d < 0 || d > 2*time.Second {
		t.Fatalf("asOf too far from now: %v", d)
	}
}

func TestRunOnce_SwallowsRepositoryError(t *testing.T) {
	dues := &duemock.Repo{
		PromoteOverdueFn: func(ctx context.Context, asOf time.Time) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	s := NewOverdueSweeper(ledger.NewUsecase(dues, &profilemock.Repo{}, nil), quietLogger())

	// Must not panic; errors are logged, the schedule keeps running.
	s.RunOnce(context.Background())
}

func TestStart_RunsImmediatelyAndSchedules(t *testing.T) {
	ran := 0
	dues := &duemock.Repo{
		PromoteOverdueFn: func(ctx context.Context, asOf time.Time) (int64, error) {
			ran++
			return 0, nil
		},
	}
	s := NewOverdueSweeper(ledger.NewUsecase(dues, &profilemock.Repo{}, nil), quietLogger())

	if err := s.Start("5 0 * * *"); err != nil {
		t.Fatalf("Start err: %v", err)
	}
	defer s.Stop()
	if ran != 1 {
		t.Fatalf("immediate sweeps = %d, want 1", ran)
	}
}

func TestStart_BadSpec(t *testing.T) {
	s := NewOverdueSweeper(ledger.NewUsecase(&duemock.Repo{}, &profilemock.Repo{}, nil), quietLogger())
	if err := s.Start("not a cron spec"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

// Sweep and reader share one predicate. Guard that PastDue stays strict.
func TestPastDueBoundary(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	e := &domain.Entry{Status: domain.StatusPending, DueDate: domain.Midnight(asOf)}
	if domain.PastDue(e, asOf) {
		t.Fatal("an entry due today is not yet past due")
	}
}
