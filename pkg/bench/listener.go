package bench

// Arena progress callbacks. The arena gives every worker its own Clone
// (with SetRow called on it), the events of one worker come from one goroutine
type ListenerLike interface {
	Clone() ListenerLike
	SetRow(row int)
	OnStart()
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

type DefaultListener struct {
	row int
}

func (d DefaultListener) Clone() ListenerLike                  { return DefaultListener{row: d.row} }
func (d DefaultListener) SetRow(row int)                       {}
func (d DefaultListener) OnStart()                             {}
func (d DefaultListener) OnGameStart(info VersusWorkerInfo)    {}
func (d DefaultListener) OnMoveMade(info VersusWorkerInfo)     {}
func (d DefaultListener) OnFinishedGame(info VersusWorkerInfo) {}
func (d DefaultListener) OnFinishedWork(info VersusWorkerInfo) {}
func (d DefaultListener) Summary(summary VersusSummaryInfo)    {}
func (d DefaultListener) OnEnd()                               {}
