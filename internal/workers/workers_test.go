// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

// ctxWorker blocks until its context is done and records the cause.
type ctxWorker struct {
	cause chan error
}

func newCtxWorker() *ctxWorker {
	return &ctxWorker{cause: make(chan error, 1)}
}

func (w *ctxWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	w.cause <- ctx.Err()
	return ctx.Err()
}

// stuckWorker ignores its context entirely.
type stuckWorker struct {
	release chan struct{}
}

func (w *stuckWorker) Run(context.Context) error {
	<-w.release
	return nil
}

type panicWorker struct{}

func (panicWorker) Run(context.Context) error {
	panic("boom")
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(time.Second, logger.Nop(), w1, w2, w3)
	report := ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
	assert.Equal(t, 3, report.Shards)
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Failed)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(time.Second, logger.Nop())

	// Should not panic on empty workers list
	report := ws.Run(context.Background())

	assert.Equal(t, PassReport{Duration: report.Duration}, report)
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_FailureDoesNotAffectSiblings(t *testing.T) {
	ok1 := &mockWorker{}
	failing := &mockWorker{err: errors.New("malformed")}
	ok2 := &mockWorker{}

	report := NewWorkers(time.Second, logger.Nop(), ok1, failing, ok2).Run(context.Background())

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Zero(t, report.TimedOut)
	assert.EqualValues(t, 1, ok2.runCount.Load())
}

func TestWorkers_Run_RunsInParallel(t *testing.T) {
	const n = 4
	var started sync.WaitGroup
	started.Add(n)
	release := make(chan struct{})

	workers := make([]Worker, n)
	for i := range workers {
		workers[i] = workerFunc(func(ctx context.Context) error {
			started.Done()
			<-release
			return nil
		})
	}

	go func() {
		// все воркеры должны стартовать одновременно, иначе тест зависнет
		started.Wait()
		close(release)
	}()

	report := NewWorkers(5*time.Second, logger.Nop(), workers...).Run(context.Background())

	assert.Equal(t, n, report.Succeeded)
}

func TestWorkers_Run_TimeoutCancelsAndAbandons(t *testing.T) {
	cooperative := newCtxWorker()
	stuck := &stuckWorker{release: make(chan struct{})}
	t.Cleanup(func() { close(stuck.release) })
	fast := &mockWorker{}

	report := NewWorkers(50*time.Millisecond, logger.Nop(), cooperative, stuck, fast).Run(context.Background())

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.TimedOut)
	assert.Equal(t, 2, report.Failed)

	select {
	case cause := <-cooperative.cause:
		assert.ErrorIs(t, cause, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("worker context was not cancelled")
	}
}

func TestWorkers_Run_PanicIsReported(t *testing.T) {
	ok := &mockWorker{}

	report := NewWorkers(time.Second, logger.Nop(), panicWorker{}, ok).Run(context.Background())

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.TimedOut)
}

func TestWorkers_Run_ParentCancellationIsNotTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := newCtxWorker()

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	report := NewWorkers(time.Minute, logger.Nop(), w).Run(ctx)

	assert.Equal(t, 1, report.Failed)
	assert.Zero(t, report.TimedOut)
}

func TestRunBounded_NoTimeout(t *testing.T) {
	ws := NewWorkers(0, logger.Nop())

	err := ws.runBounded(context.Background(), &mockWorker{err: errors.New("x")})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrShardTimeout)
}

func TestRunSafely_Panic(t *testing.T) {
	err := runSafely(context.Background(), panicWorker{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkerPanic)
	assert.Contains(t, err.Error(), "boom")
}

// workerFunc adapts a function to the Worker interface.
type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Строки о сбоях шардов пишутся логгером из контекста прохода.
func TestWorkers_Run_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	passLogger := zerolog.New(&buf).With().Str(logger.PassField, "pass-7").Logger()
	ctx := passLogger.WithContext(context.Background())

	failing := &mockWorker{err: errors.New("broken")}
	report := NewWorkers(time.Second, logger.Nop(), &mockWorker{}, failing).Run(ctx)

	assert.Equal(t, 1, report.Failed)
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "shard failed"))
	assert.Contains(t, out, `"pass_id":"pass-7"`)
	assert.Contains(t, out, `"shard":2`)
}
