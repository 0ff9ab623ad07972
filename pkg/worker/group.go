package worker

import (
	"context"
	"sync"
)

type (
	ContextJob func(context.Context) error

	// Group runs jobs sharing one context and reports the first result.
	// The context is cancelled as soon as any job returns.
	Group interface {
		Do(ContextJob)
		Wait() error
	}
)

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	pool      Pool

	resultOnce sync.Once
	err        error
}

func NewGroup(ctx context.Context) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:       ctx,
		ctxCancel: cancel,
		pool:      NewPool(MaxWorkersCountUnlimited),
	}
}

func (g *group) Do(job ContextJob) {
	g.pool.Do(func() {
		err := job(g.ctx)
		g.resultOnce.Do(func() {
			g.err = err
			g.ctxCancel()
		})
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.ctxCancel()
	return g.err
}
