package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1739467001-svg/kaiyan/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Purges(t *testing.T) {
	sessions := mocks.NewMockSessionPurger(t)
	flows := mocks.NewMockFlowPurger(t)
	log := newTestLogger(t)

	s := New(sessions, flows, 50*time.Millisecond, log)

	sessions.EXPECT().PurgeExpired(mock.Anything).Return(2, nil)
	flows.EXPECT().PurgeIdle(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sessions.Calls), 1)
	assert.GreaterOrEqual(t, len(flows.Calls), 1)
}

func TestScheduler_Tick_SessionErrorDoesNotSkipFlows(t *testing.T) {
	sessions := mocks.NewMockSessionPurger(t)
	flows := mocks.NewMockFlowPurger(t)
	log := newTestLogger(t)

	s := New(sessions, flows, 50*time.Millisecond, log)

	sessions.EXPECT().PurgeExpired(mock.Anything).Return(0, errors.New("boom"))
	flows.EXPECT().PurgeIdle(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(flows.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sessions := mocks.NewMockSessionPurger(t)
	flows := mocks.NewMockFlowPurger(t)
	log := newTestLogger(t)

	s := New(sessions, flows, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sessions := mocks.NewMockSessionPurger(t)
	flows := mocks.NewMockFlowPurger(t)
	log := newTestLogger(t)

	s := New(sessions, flows, 30*time.Millisecond, log)

	sessions.EXPECT().PurgeExpired(mock.Anything).Return(0, nil)
	flows.EXPECT().PurgeIdle(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sessions.Calls), 2)
}
