package search

import (
	"context"
	"sync/atomic"
	"time"
	"unsafe"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1  // Stopped by user, by calling Engine.Stop or context cancellation
	StopMovetime             = 2  // Time limit reached
	StopDepth                = 4  // Depth limit reached
	StopNodes                = 8  // Node limit reached
	StopExhausted            = 16 // Every line reached the end of the game, deeper search changes nothing
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopDepth, "Depth"},
		{StopNodes, "Nodes"},
		{StopExhausted, "Exhausted"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

const (
	stopMask      int = StopInterrupt
	timeMask      int = StopMovetime
	depthMask     int = StopDepth
	nodesMask     int = StopNodes
	exhaustedMask int = StopExhausted
)

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	wake   chan struct{}
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		wake:   make(chan struct{}, 1),
		ctx:    context.Background(),
	}
}

// Reset the flags and start the timer, called on search setup
func (l *Limiter) Reset() {
	l.Timer.Restart(l.limits.Movetime)
	l.stop.Store(false)
	l.reason = StopNone

	select {
	case <-l.wake:
	default:
	}
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) Context() context.Context {
	return l.ctx
}

// Set the stop signal, wakes up a pending Wait
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
	if v {
		select {
		case l.wake <- struct{}{}:
		default:
		}
	}
}

// Get the stop signal, context cancellation counts as one
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time in ms since the last Reset
func (l *Limiter) Elapsed() int {
	return l.Timer.ElapsedMs()
}

func toMask(val bool, offset int) int {
	return int(*(*byte)(unsafe.Pointer(&val))) << offset
}

// Bitmask of the reached limits after completing 'depth' with 'nodes' visited,
// 'exhausted' is true if no line was cut by the depth horizon
func (l *Limiter) LimitMask(depth int, nodes uint64, exhausted bool) int {
	limitMask := toMask(l.Stop(), 0) | toMask(exhausted, 4)
	if l.limits.Infinite {
		return limitMask
	}

	limitMask |= toMask(l.Timer.Expired(), 1)
	limitMask |= toMask(l.limits.Depth <= depth, 2)
	limitMask |= toMask(l.limits.Nodes <= nodes, 3)

	return limitMask
}

// Check whether the next depth may be started
func (l *Limiter) Ok(depth int, nodes uint64, exhausted bool) bool {
	return l.LimitMask(depth, nodes, exhausted) == 0
}

// Evaluate the stop reason based on the current state and store it
func (l *Limiter) EvaluateStopReason(depth int, nodes uint64, exhausted bool) StopReason {
	mask := l.LimitMask(depth, nodes, exhausted)
	reason := StopNone

	for _, flag := range [...]int{stopMask, timeMask, depthMask, nodesMask, exhaustedMask} {
		if mask&flag == flag {
			reason |= StopReason(flag)
		}
	}

	l.reason = reason
	return reason
}

func (l *Limiter) SetStopReason(reason StopReason) {
	l.reason = reason
}

// Get the reason why the search was stopped, valid after the search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Sleep for 'ms' milliseconds, returns false if interrupted by
// the stop signal or the context
func (l *Limiter) Wait(ms int) bool {
	if ms <= 0 {
		return !l.Stop()
	}

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
		return !l.Stop()
	case <-l.wake:
		return false
	case <-l.ctx.Done():
		l.stop.Store(true)
		return false
	}
}
