package indexsync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrQueueFull = errors.New("task queue is full")

// PoolConfig represents pool configuration
type PoolConfig struct {
	MaxWorkers  int           // number of worker goroutines
	QueueSize   int           // buffered tasks before Submit reports ErrQueueFull
	TaskTimeout time.Duration // per-task deadline, zero for none
}

// Validate validates configuration
func (cfg PoolConfig) Validate() error {
	if cfg.MaxWorkers < 1 {
		return errors.New("max workers must be greater than 0")
	}
	if cfg.QueueSize < 1 {
		return errors.New("queue size must be greater than 0")
	}
	if cfg.TaskTimeout < 0 {
		return errors.New("task timeout must be greater than or equal to 0")
	}
	return nil
}

// Task is a unit of work run by the pool.
type Task func(ctx context.Context) error

// PoolStats is a snapshot of pool counters.
type PoolStats struct {
	Active    int64
	Pending   int64
	Completed int64
	Failed    int64
}

// Pool runs submitted tasks on a fixed number of workers.
type Pool struct {
	cfg   PoolConfig
	tasks chan Task

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool

	active    atomic.Int64
	pending   atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

func NewPool(cfg PoolConfig) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		cfg:    cfg,
		tasks:  make(chan Task, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.cfg.MaxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop stops accepting tasks, lets workers drain the queue and waits for
// them until ctx is done. In-flight tasks are cancelled when ctx expires.
func (p *Pool) Stop(ctx context.Context) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	p.cancel()
}

// Submit queues task without blocking.
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return errors.New("pool is stopped")
	}

	select {
	case p.tasks <- task:
		p.pending.Add(1)
		return nil
	default:
		return ErrQueueFull
	}
}

// Free is the number of tasks that can be submitted without hitting ErrQueueFull.
func (p *Pool) Free() int {
	return p.cfg.QueueSize - len(p.tasks)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *Pool) run(task Task) {
	p.active.Add(1)
	p.pending.Add(-1)
	defer p.active.Add(-1)

	ctx := p.ctx
	if p.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(p.ctx, p.cfg.TaskTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			p.failed.Add(1)
		}
	}()

	if err := task(ctx); err != nil {
		p.failed.Add(1)
		return
	}
	p.completed.Add(1)
}

// Stats returns the current counters
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Active:    p.active.Load(),
		Pending:   p.pending.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}
