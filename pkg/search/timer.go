package search

import (
	"time"
)

// Movetime clock of a search. The engine reads it only after a depth is
// completed, so a search may overrun the deadline by the length of the
// depth in progress; the result is never a partially searched depth
type _Timer struct {
	begin    time.Time
	deadline time.Time // zero when there is no movetime limit
}

func _NewTimer() *_Timer {
	return &_Timer{begin: time.Now()}
}

// Restart the clock, 'movetime' in ms, negative means no deadline
func (t *_Timer) Restart(movetime int) {
	t.begin = time.Now()
	t.deadline = time.Time{}
	if movetime >= 0 {
		t.deadline = t.begin.Add(time.Duration(movetime) * time.Millisecond)
	}
}

func (t *_Timer) HasDeadline() bool {
	return !t.deadline.IsZero()
}

// True once the deadline is reached, checked at depth boundaries
func (t *_Timer) Expired() bool {
	return t.HasDeadline() && !time.Now().Before(t.deadline)
}

// Milliseconds since Restart, at least 1 so nps never divides by zero
func (t *_Timer) ElapsedMs() int {
	return max(int(time.Since(t.begin).Milliseconds()), 1)
}
