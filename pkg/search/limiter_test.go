package search

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetInfinite(true))
	limiter.Reset()

	if !limiter.Ok(1000, 1000000, false) {
		t.Error("Infinite limiter should search until stopped")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(1, 101, false); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(1, 99, false); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetDepth(4))
	limiter.Reset()
	if ok := limiter.Ok(4, 1, false); ok {
		t.Errorf("<Depth=%d: ok=%v, want=%v", 4, ok, !ok)
	}
	if ok := limiter.Ok(3, 1, false); !ok {
		t.Errorf(">Depth=%d: ok=%v, want=%v", 3, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(50))
	limiter.Reset()
	time.Sleep(time.Millisecond * 51)
	if ok := limiter.Ok(1, 1, false); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1, 1, false); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}

	if ok := limiter.Ok(1, 1, true); ok {
		t.Errorf("Exhausted: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStopReason(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetDepth(3).SetNodes(10))
	limiter.Reset()

	limiter.SetStop(true)
	reason := limiter.EvaluateStopReason(3, 11, true)
	want := StopReason(StopInterrupt | StopDepth | StopNodes | StopExhausted)
	if reason != want || limiter.StopReason() != want {
		t.Errorf("reason = %s, want %s", reason, want)
	}
	if reason.String() != "Interrupt|Depth|Nodes|Exhausted" {
		t.Errorf("String() = %s", reason)
	}
	if StopReason(StopNone).String() != "None" {
		t.Errorf("StopNone.String() = %s", StopReason(StopNone))
	}

	limiter.Reset()
	if limiter.Stop() || limiter.StopReason() != StopNone {
		t.Error("Reset should clear the stop flag and the reason")
	}
}

func TestLimiterContext(t *testing.T) {
	limiter := NewLimiter()
	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.Reset()

	if limiter.Stop() {
		t.Fatal("Stop should be false before cancellation")
	}
	cancel()
	if !limiter.Stop() {
		t.Error("context cancellation should set the stop flag")
	}
	if limiter.EvaluateStopReason(1, 1, false)&StopInterrupt == 0 {
		t.Error("context cancellation should be reported as Interrupt")
	}
}

func TestLimiterWait(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	if !limiter.Wait(5) {
		t.Error("Wait without a stop signal should return true")
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		limiter.SetStop(true)
	}()

	begin := time.Now()
	if limiter.Wait(10000) {
		t.Error("Wait should be interrupted by the stop signal")
	}
	if elapsed := time.Since(begin); elapsed > 5*time.Second {
		t.Errorf("Wait took %v", elapsed)
	}

	limiter.Reset()
	if !limiter.Wait(1) {
		t.Error("Reset should drain a pending wake up")
	}
}

func TestLimitsBuilder(t *testing.T) {
	limits := DefaultLimits().SetDepth(0).SetPause(-5).SetMovetime(100)
	if limits.Depth != 1 || limits.Pause != 0 || limits.Movetime != 100 || limits.Infinite {
		t.Errorf("unexpected limits %s", limits)
	}

	SetDefaultDepth(9)
	defer SetDefaultDepth(6)
	if DefaultLimits().Depth != 9 {
		t.Error("SetDefaultDepth should change DefaultLimits")
	}
	SetDefaultDepth(0)
	if DefaultDepth != 9 {
		t.Error("SetDefaultDepth should ignore values below 1")
	}
	t.Logf("%s", limits)
}
