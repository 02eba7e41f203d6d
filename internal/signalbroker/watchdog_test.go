// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/surechen/rim/internal/ctxlog"
)

func TestWatch_FirstSignalDoesNotCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled after first signal")
	default:
	}

	close(sigCh)
	wg.Wait()
}

func TestWatch_SecondSignalCancels(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	wg.Wait()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be cancelled after second signal")
	}
}

func TestWatch_DistinctSignalsDoNotCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Kill
	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("distinct signal types should not cancel")
	default:
	}

	close(sigCh)
	wg.Wait()
}

func TestWatch_SignalAfterShutdownIsHarmless(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := New(ctx, syscall.SIGUSR1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	wg.Wait()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be cancelled after second signal")
	}

	// The watchdog closed the channel on its way out; a late signal must
	// not be delivered to it.
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	time.Sleep(50 * time.Millisecond)
}

func TestNew_DefaultSignals(t *testing.T) {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	ch := New(ctx)

	assert.NotNil(t, ch)
	assert.Equal(t, 1, cap(ch))
}
