package syncer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vidscope/vidscope/pkg/domain"
	"github.com/vidscope/vidscope/pkg/syncer/mocks"
)

func TestScheduler_StartStop(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*domain.RunReport, error) {
			atomic.AddInt32(&runs, 1)
			return &domain.RunReport{Success: true, Timestamp: time.Now()}, nil
		},
	}

	s := NewScheduler(runner, 20*time.Millisecond)
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 },
		time.Second, 5*time.Millisecond, "immediate pass plus at least two ticks")

	s.Stop()
	after := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs), "no runs after stop")
}

func TestScheduler_RunsImmediately(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*domain.RunReport, error) {
			atomic.AddInt32(&runs, 1)
			return &domain.RunReport{Success: true}, nil
		},
	}

	// long interval, only the startup pass can fire
	s := NewScheduler(runner, time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_SurvivesRunErrors(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*domain.RunReport, error) {
			atomic.AddInt32(&runs, 1)
			return nil, errors.New("load accounts: connection refused")
		},
	}

	s := NewScheduler(runner, 20*time.Millisecond)
	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 2 },
		time.Second, 5*time.Millisecond, "failed pass does not kill the loop")
}

func TestScheduler_DisabledInterval(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*domain.RunReport, error) {
			t.Fatal("runner must not be called with scheduling disabled")
			return nil, nil
		},
	}

	s := NewScheduler(runner, 0)
	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop() // safe even though nothing started
	assert.Empty(t, runner.RunCalls())
}
