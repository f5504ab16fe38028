// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import (
	"context"
	"crypto/tls"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/domain"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/probe"
)

// White-box tests for the deadline race: the handshake deadline is a fixed
// protocol parameter, so tests shorten the unexported timeout directly.

func TestValidateTimeout(t *testing.T) {
	probeDone := make(chan struct{})
	var sawCancel atomic.Bool

	// The mock handshake never completes on its own; it only returns once
	// the validator cancels the probe context.
	p := probe.NewWithDialer(func(ctx context.Context, network, addr string, cfg *tls.Config) (probe.Conn, error) {
		defer close(probeDone)
		<-ctx.Done()
		sawCancel.Store(true)
		return nil, ctx.Err()
	})

	v := New(p, nil)
	v.timeout = 30 * time.Millisecond

	result, err := v.Validate(context.Background(), Request{
		URL:                 "https://slow.example.com",
		RuntimeFingerprints: []string{strings.Repeat("a", 64)},
	}, domain.Config{})
	require.NoError(t, err, "timeout resolves, never throws")

	assert.False(t, result.FingerprintMatched)
	assert.Equal(t, CodeTimeout, result.ErrorCode)
	assert.Equal(t, ModeFingerprint, result.Mode)
	assert.Empty(t, result.ActualFingerprint)

	// The in-flight connection is actively invalidated, not abandoned: the
	// dial must observe cancellation, and its late completion is a no-op.
	select {
	case <-probeDone:
	case <-time.After(time.Second):
		t.Fatal("probe goroutine did not observe cancellation")
	}
	assert.True(t, sawCancel.Load())
}

func TestValidateProbeWinsRace(t *testing.T) {
	p := probe.NewWithDialer(func(ctx context.Context, network, addr string, cfg *tls.Config) (probe.Conn, error) {
		return nil, context.DeadlineExceeded // fast failure, well before the deadline
	})

	v := New(p, nil)
	v.timeout = time.Second

	start := time.Now()
	result, err := v.Validate(context.Background(), Request{
		URL:                 "https://fast.example.com",
		RuntimeFingerprints: []string{strings.Repeat("a", 64)},
	}, domain.Config{})
	require.NoError(t, err)

	assert.Equal(t, CodeNetworkError, result.ErrorCode)
	assert.Less(t, time.Since(start), time.Second, "probe completion must not wait out the timer")
}

func TestHandshakeTimeoutIsFixed(t *testing.T) {
	assert.Equal(t, 10*time.Second, HandshakeTimeout)

	v := New(probe.New(), nil)
	assert.Equal(t, HandshakeTimeout, v.timeout)
}
