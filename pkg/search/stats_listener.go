package search

// Snapshot passed to the listener callbacks
type ListenerStats struct {
	Result
	State State
}

// Listener function callback, receives the result of the last completed depth
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called after every completed depth, before the limits are checked,
	// the natural place to render the intermediate result
	onDepth ListenerFunc

	// called once when the search ends (by a limit or the 'stop' signal)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new on depth completed callback, runs on the search goroutine,
// calling Engine.Stop from it ends the search after this depth
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invoke(f ListenerFunc, result Result, state State) {
	if f != nil {
		f(ListenerStats{Result: result, State: state})
	}
}
