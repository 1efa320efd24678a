package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	runs      atomic.Int32
	failCount int32
	mode      string // "fail", "panic", "finish", "block"
}

func (w *countingWorker) Run(ctx context.Context) error {
	n := w.runs.Add(1)
	switch w.mode {
	case "fail":
		if n <= w.failCount {
			return errors.New("transient failure")
		}
		<-ctx.Done()
		return nil
	case "panic":
		if n <= w.failCount {
			panic("boom")
		}
		<-ctx.Done()
		return nil
	case "finish":
		return nil
	default:
		<-ctx.Done()
		return nil
	}
}

func TestSupervisorRestartsCrashedWorker(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{mode: "fail", failCount: 2}
	sup := NewSupervisor(discardLogger(), 5*time.Millisecond)
	sup.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool { return worker.runs.Load() == 3 },
		time.Second, 5*time.Millisecond)

	cancel()
	<-done
	req.Equal(int32(3), worker.runs.Load())
}

func TestSupervisorRecoversPanics(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{mode: "panic", failCount: 1}
	sup := NewSupervisor(discardLogger(), 5*time.Millisecond)
	sup.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool { return worker.runs.Load() == 2 },
		time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestSupervisorCleanFinishIsNotRestarted(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{mode: "finish"}
	sup := NewSupervisor(discardLogger(), 5*time.Millisecond)
	sup.Add(worker)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervisor did not return after workers finished")
	}
	req.Equal(int32(1), worker.runs.Load())
}

func TestSupervisorStop(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{mode: "block"}
	sup := NewSupervisor(discardLogger(), 5*time.Millisecond)
	sup.Add(worker)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	req.Eventually(func() bool { return worker.runs.Load() == 1 },
		time.Second, 5*time.Millisecond)

	sup.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervisor did not stop")
	}
}
