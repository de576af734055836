// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package outbox

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/tracing"
)

func TestSubmitRetriesUntilSuccess(t *testing.T) {
	o := NewOutbox(5, time.Millisecond, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	var calls atomic.Int32
	o.Submit(Task{
		Name: "flaky",
		Run: func(ctx context.Context) error {
			if calls.Add(1) < 3 {
				return errors.New("transient")
			}
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.Drain(ctx); err != nil {
		t.Fatalf("drain failed: %v", err)
	}

	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestSubmitGivesUpAfterAttempts(t *testing.T) {
	o := NewOutbox(2, time.Millisecond, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	var calls atomic.Int32
	o.Submit(Task{
		Name: "broken",
		Run: func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("permanent")
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.Drain(ctx); err != nil {
		t.Fatalf("drain failed: %v", err)
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}
