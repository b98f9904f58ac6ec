package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob(Job{
		Name:       "startup_job",
		Interval:   time.Hour,
		RunOnStart: true,
		Fn: func(ctx context.Context) error {
			ran <- struct{}{}
			return nil
		},
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job with RunOnStart did not fire at startup")
	}
}

func TestScheduler_NoRunBeforeFirstInterval(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob(Job{
		Name:     "patient_job",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			ran <- struct{}{}
			return nil
		},
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
		t.Fatal("job without RunOnStart fired before its interval elapsed")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.AddJob(Job{
		Name:     "counted_job",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			count++
			return nil
		},
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, count)
}
