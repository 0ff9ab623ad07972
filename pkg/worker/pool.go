//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Pool=Pool"
package worker

import (
	"runtime"
	"sync"
)

const (
	MaxWorkersCountNumCPU    = -1
	MaxWorkersCountUnlimited = 0
)

type Job func()

// Pool runs jobs in goroutines, blocking Do while maxWorkers jobs are in flight.
type Pool interface {
	Do(Job)
	Wait()
}

type pool struct {
	jobCompleted    sync.WaitGroup
	workerAvailable *sync.Cond
	currentWorkers  int
	maxWorkers      int
}

func NewPool(maxWorkers int) Pool {
	if maxWorkers <= MaxWorkersCountNumCPU {
		maxWorkers = runtime.NumCPU()
	}
	return &pool{
		workerAvailable: sync.NewCond(&sync.Mutex{}),
		maxWorkers:      maxWorkers,
	}
}

func (p *pool) Do(job Job) {
	p.jobCompleted.Add(1)

	if p.maxWorkers > 0 {
		p.workerAvailable.L.Lock()
		for p.currentWorkers >= p.maxWorkers {
			p.workerAvailable.Wait()
		}
		p.currentWorkers++
		p.workerAvailable.L.Unlock()
	}

	go func() {
		defer p.jobCompleted.Done()
		job()

		if p.maxWorkers > 0 {
			p.workerAvailable.L.Lock()
			p.currentWorkers--
			p.workerAvailable.L.Unlock()
			p.workerAvailable.Signal()
		}
	}()
}

func (p *pool) Wait() {
	p.jobCompleted.Wait()
}
