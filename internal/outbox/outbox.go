// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package outbox runs committed best-effort follow-ups (mirror writes,
// notification email) after a workflow's primary persistence has succeeded.
// Tasks are retried with backoff; a task that exhausts its retries is logged
// and dropped, never rolled back into the originating request.
package outbox

import (
	"context"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type OutboxInterface interface {
	Submit(task Task)
}

var _ OutboxInterface = (*Outbox)(nil)

type Outbox struct {
	attempts uint
	delay    time.Duration
	timeout  time.Duration

	wg sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewOutbox(attempts uint, delay time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Outbox {
	return &Outbox{
		attempts: attempts,
		delay:    delay,
		timeout:  2 * time.Minute,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Submit schedules a task for asynchronous execution. It returns immediately;
// the submitting request's outcome is already decided.
func (o *Outbox) Submit(task Task) {
	id := uuid.NewString()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		defer cancel()

		ctx, span := o.tracer.Start(ctx, "outbox.Task."+task.Name)
		defer span.End()

		err := retry.Do(
			func() error { return task.Run(ctx) },
			retry.Context(ctx),
			retry.Attempts(o.attempts),
			retry.Delay(o.delay),
			retry.DelayType(retry.BackOffDelay),
			retry.OnRetry(func(n uint, err error) {
				o.logger.Warnf("follow-up %s (%s) attempt %d failed: %v", task.Name, id, n+1, err)
			}),
		)
		if err != nil {
			o.logger.Errorf("follow-up %s (%s) gave up: %v", task.Name, id, err)
			return
		}

		o.logger.Debugf("follow-up %s (%s) completed", task.Name, id)
	}()
}

// Drain blocks until in-flight tasks finish or ctx expires.
func (o *Outbox) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
