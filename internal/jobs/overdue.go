package jobs

import (
	"context"
	"time"

	"tradecredit-backend/internal/usecase/ledger"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OverdueSweeper periodically promotes pending dues past their due date to
// overdue. The stored-status policy: nothing else ever writes the overdue
// state, and readers filter on stored status only.
type OverdueSweeper struct {
	ledger *ledger.Usecase
	log    *logrus.Logger
	cron   *cron.Cron
}

func NewOverdueSweeper(l *ledger.Usecase, log *logrus.Logger) *OverdueSweeper {
	return &OverdueSweeper{ledger: l, log: log, cron: cron.New()}
}

// Start runs one sweep immediately (catch-up after downtime), then on the
// given cron spec.
func (s *OverdueSweeper) Start(spec string) error {
	s.RunOnce(context.Background())
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *OverdueSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *OverdueSweeper) RunOnce(ctx context.Context) {
	n, err := s.ledger.PromoteOverdue(ctx, time.Now())
	if err != nil {
		s.log.WithError(err).Error("overdue sweep failed")
		return
	}
	if n > 0 {
		s.log.WithField("promoted", n).Info("overdue sweep")
	}
}
