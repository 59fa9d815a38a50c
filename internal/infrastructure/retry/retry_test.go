package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("still broken")
	err := Do(context.Background(), func() error {
		calls++
		return wantErr
	}, fastConfig())

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestDo_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	calls := 0
	cfg := fastConfig().WithMaxAttempts(0)

	err := Do(context.Background(), func() error {
		calls++
		return errors.New("fail")
	}, cfg)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_PermanentErrorStopsRetrying(t *testing.T) {
	calls := 0
	cfg := fastConfig().WithRetryIf(SkipPermanent)

	err := Do(context.Background(), func() error {
		calls++
		return NewPermanent(errors.New("bad request"))
	}, cfg)

	assert.Error(t, err)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, 1, calls)
}

func TestDo_RetryIfPredicate(t *testing.T) {
	retryable := errors.New("retryable")
	fatal := errors.New("fatal")

	calls := 0
	cfg := fastConfig().WithRetryIf(func(err error) bool {
		return errors.Is(err, retryable)
	})

	err := Do(context.Background(), func() error {
		calls++
		if calls == 1 {
			return retryable
		}
		return fatal
	}, cfg)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return errors.New("fail")
	}, fastConfig())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDo_ContextCancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastConfig()
	cfg.InitialDelay = 50 * time.Millisecond
	cfg.MaxDelay = 50 * time.Millisecond

	calls := 0
	err := Do(ctx, func() error {
		calls++
		cancel()
		return errors.New("fail")
	}, cfg)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	calls := 0
	got, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "pricing data", nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, "pricing data", got)
	assert.Equal(t, 2, calls)
}

func TestDoWithResult_ZeroValueOnFailure(t *testing.T) {
	got, err := DoWithResult(context.Background(), func() (int, error) {
		return 0, errors.New("fail")
	}, fastConfig())

	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestNewPermanent_NilPassthrough(t *testing.T) {
	assert.NoError(t, NewPermanent(nil))
}

func TestIsPermanent_WrappedError(t *testing.T) {
	inner := errors.New("inner")
	wrapped := NewPermanent(inner)

	assert.True(t, IsPermanent(wrapped))
	assert.ErrorIs(t, wrapped, inner)
	assert.False(t, IsPermanent(inner))
}

func TestCalculateSleepTime_CappedAtMaxDelay(t *testing.T) {
	got := calculateSleepTime(10*time.Second, time.Second, 0.5)
	assert.Equal(t, time.Second, got)
}
