package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/hoshibmatchi/hoshi-client/pkg/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPool_Do_LimitsConcurrency(t *testing.T) {
	p := worker.NewPool(2)

	var current, peak atomic.Int32
	for range 10 {
		p.Do(func() {
			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			current.Add(-1)
		})
	}
	p.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Zero(t, current.Load())
}

func TestPool_Do_UnlimitedRunsAllAtOnce(t *testing.T) {
	p := worker.NewPool(worker.MaxWorkersCountUnlimited)

	const jobs = 5
	started := make(chan struct{}, jobs)
	release := make(chan struct{})
	for range jobs {
		p.Do(func() {
			started <- struct{}{}
			<-release
		})
	}

	for range jobs {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("jobs were not started concurrently")
		}
	}
	close(release)
	p.Wait()
}

func TestGroup_Wait_ReturnsFirstResultAndCancels(t *testing.T) {
	errExpected := errors.New("failed")
	ctx, g := worker.NewGroup(context.Background())

	g.Do(func(context.Context) error {
		return errExpected
	})
	g.Do(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, g.Wait(), errExpected)
	assert.Error(t, ctx.Err())
}
