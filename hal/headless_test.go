package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessTickCount(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { steps++; return nil }
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps: got %d, want 5", steps)
	}
}

func TestRunHeadlessShutdown(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { steps++; return ErrShutdown }
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Ticks: 100})
	if err != nil {
		t.Fatalf("shutdown must end the run cleanly, got %v", err)
	}
	if steps != 1 {
		t.Fatalf("steps after shutdown: got %d, want 1", steps)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Ticks: 10})
	if !errors.Is(err, boom) {
		t.Fatalf("step error not surfaced: got %v", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(h HAL) func() error {
		return func() error { return nil }
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestRunHeadlessBadSize(t *testing.T) {
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return nil }
	}, HeadlessConfig{Width: 0, Height: 8, Hz: 60, Ticks: 1})
	if err == nil {
		t.Fatalf("zero width accepted")
	}
}
