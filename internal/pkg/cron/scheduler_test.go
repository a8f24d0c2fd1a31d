package cron

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("count", time.Hour, func(_ context.Context) error {
		runs.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_RunOnce_FailingJobDoesNotStopOthers(t *testing.T) {
	var ran atomic.Bool
	s := NewScheduler()
	s.AddJob("broken", time.Hour, func(_ context.Context) error {
		return fmt.Errorf("boom")
	})
	s.AddJob("healthy", time.Hour, func(_ context.Context) error {
		ran.Store(true)
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, ran.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("tick", 10*time.Millisecond, func(_ context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(35 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	assert.GreaterOrEqual(t, after, int32(1))

	// No further runs once stopped.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	assert.NotPanics(t, s.Stop)
}
