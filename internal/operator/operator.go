package operator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/hustle-tracker/internal/operator/actions"
	"github.com/carson-networks/hustle-tracker/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		queueDepth.Dec()
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	start := time.Now()
	name := item.action.Name()

	err := o.perform(item)
	outcome := "committed"
	if err != nil {
		outcome = "rolled_back"
		o.logger.WithError(err).WithField("action", name).Debug("Operator.processItem.rollback")
	}
	observeAction(name, outcome, time.Since(start))

	item.response <- ActionItemResponse{err: err}
}

func (o *Operator) perform(item ActionItem) error {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	// The caller abandoned the item while it was being performed.
	if !item.claim.CompareAndSwap(itemWaiting, itemCommitting) {
		_ = writer.Rollback()
		if err := item.ctx.Err(); err != nil {
			return err
		}
		return ErrAbandoned
	}
	return writer.Commit()
}

// Item claim states. Whichever of the worker (committing) or the caller
// (abandoning) moves the claim off itemWaiting first decides the outcome.
const (
	itemWaiting int32 = iota
	itemAbandoned
	itemCommitting
)

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	claim    *atomic.Int32
}

func newActionItem(ctx context.Context, action actions.IAction) ActionItem {
	return ActionItem{
		ctx:      ctx,
		action:   action,
		response: make(chan ActionItemResponse, 1),
		claim:    new(atomic.Int32),
	}
}

type ActionItemResponse struct {
	err error
}
