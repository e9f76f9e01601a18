package translation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

// flakyTranslator fails a configured number of times before succeeding
type flakyTranslator struct {
	failures int
	calls    int
}

func (f *flakyTranslator) TranslateBatch(ctx context.Context, lines []string) ([]string, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, fmt.Errorf("simulated API failure %d", f.calls)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "vi: " + line
	}
	return out, nil
}

func (f *flakyTranslator) Name() string { return "flaky" }

func (f *flakyTranslator) IsAvailable() error { return nil }

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	inner := &flakyTranslator{failures: 2}
	translator := WithRetry(inner, 8)

	start := time.Now()
	out, err := translator.TranslateBatch(context.Background(), []string{"req one"})
	if err != nil {
		t.Fatalf("TranslateBatch failed: %v", err)
	}

	if inner.calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", inner.calls)
	}
	if len(out) != 1 || out[0] != "vi: req one" {
		t.Errorf("Unexpected output: %v", out)
	}

	// Two backoff sleeps happened (roughly 1s + 2s with jitter)
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Errorf("Retries returned suspiciously fast: %v", elapsed)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyTranslator{failures: 100}
	translator := WithRetry(inner, 2)

	_, err := translator.TranslateBatch(context.Background(), []string{"req one"})
	if err == nil {
		t.Fatal("Expected error after exhausting attempts")
	}
	if inner.calls != 2 {
		t.Errorf("Expected 2 attempts, got %d", inner.calls)
	}
}

func TestWithRetry_ContextCancelIsPermanent(t *testing.T) {
	inner := &flakyTranslator{failures: 100}
	translator := WithRetry(inner, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := translator.TranslateBatch(ctx, []string{"req one"})
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}

	// No backoff sleeps for a dead context
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Cancelled context still slept: %v", elapsed)
	}
}

func TestWithRetry_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyTranslator{failures: 100}
	translator := WithRetry(inner, 8).(*retryTranslator)
	translator.initialInterval = time.Millisecond

	_, err := translator.TranslateBatch(context.Background(), []string{"req one"})
	if err == nil {
		t.Fatal("Expected error from failing provider")
	}

	// Five consecutive failures trip the breaker; the remaining
	// attempts must fail fast without reaching the provider
	if inner.calls != 5 {
		t.Errorf("Expected provider calls to stop at 5, got %d", inner.calls)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected gobreaker.ErrOpenState in chain, got %v", err)
	}
}

func TestWithRetry_DelegatesMetadata(t *testing.T) {
	inner := &flakyTranslator{}
	translator := WithRetry(inner, 8)

	if translator.Name() != "flaky" {
		t.Errorf("Name() = %s", translator.Name())
	}
	if err := translator.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() = %v", err)
	}
}

func TestWithRetry_MinimumOneAttempt(t *testing.T) {
	inner := &flakyTranslator{failures: 100}
	translator := WithRetry(inner, 0)

	_, err := translator.TranslateBatch(context.Background(), []string{"req"})
	if err == nil {
		t.Fatal("Expected error")
	}
	if inner.calls != 1 {
		t.Errorf("Expected exactly 1 attempt, got %d", inner.calls)
	}
}
