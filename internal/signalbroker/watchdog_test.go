// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchFirstSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	sigCh <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be cancelled after the first signal")
	}

	close(sigCh)
	wg.Wait()
}

func TestWatchSecondSignalExits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	codes := make(chan int, 1)
	stubs := gostub.Stub(&exit, func(code int) { codes <- code })

	defer stubs.Reset()

	sigCh := make(chan os.Signal, 2)
	sigCh <- syscall.SIGTERM
	sigCh <- syscall.SIGTERM

	Watch(ctx, sigCh, cancel)

	assert.Equal(t, ExitCodeInterrupted, <-codes)
	assert.Error(t, ctx.Err())
}

func TestWatchDifferentSignalsDoNotExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stubs := gostub.Stub(&exit, func(int) { t.Error("exit should not be called") })
	defer stubs.Reset()

	sigCh := make(chan os.Signal, 2)
	sigCh <- os.Interrupt
	sigCh <- syscall.SIGTERM
	close(sigCh)

	Watch(ctx, sigCh, cancel)
	assert.Error(t, ctx.Err())
}
