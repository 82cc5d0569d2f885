package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

type flowPurger interface {
	PurgeIdle(ctx context.Context) (int, error)
}

// Scheduler periodically sweeps out expired admin sessions and
// abandoned booking flows.
type Scheduler struct {
	sessions sessionPurger
	flows    flowPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionPurger,
	flows flowPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		flows:    flows,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sessions, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
	}

	flows, err := s.flows.PurgeIdle(ctx)
	if err != nil {
		s.logger.Error("failed to purge idle booking flows",
			logger.String("error", err.Error()),
		)
	}

	if sessions > 0 || flows > 0 {
		s.logger.Info("sweep finished",
			logger.Int("expired_sessions", sessions),
			logger.Int("idle_flows", flows),
		)
	}
}
