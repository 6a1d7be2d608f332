package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/hustle-tracker/internal/operator/actions"
	"github.com/carson-networks/hustle-tracker/internal/storage"
)

var (
	ErrStopped   = errors.New("operator stopped")
	ErrAbandoned = errors.New("action abandoned by caller")
)

const defaultQueueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    *storage.Storage
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, logger *logrus.Logger, numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start.started")
}

// Stop closes the queue and waits for the workers to drain it.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("OperatorDelegator.Stop.stopped")
}

// Running reports whether workers are consuming the queue.
func (d *OperatorDelegator) Running() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.started && !d.stopped
}

// Process enqueues action and waits for a worker to commit or roll it back.
// A nil error means the action was committed. If ctx ends first the action
// is abandoned and never committed, unless a worker had already started
// committing it, in which case that outcome is returned.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	item := newActionItem(ctx, action)

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-item.response:
		return resp.err
	case <-ctx.Done():
		if item.claim.CompareAndSwap(itemWaiting, itemAbandoned) {
			return ctx.Err()
		}
		resp := <-item.response
		return resp.err
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	queueDepth.Inc()
	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		queueDepth.Dec()
		return ctx.Err()
	}
}
