package search

// Default maximum depth of the iterative deepening, used by DefaultLimits
var DefaultDepth int = 6

// Set the default depth limit, values below 1 are ignored
func SetDefaultDepth(depth int) {
	if depth >= 1 {
		DefaultDepth = depth
	}
}

// Delay between two depths (in ms), gives the caller time to render
// the intermediate result. 0 means no pause
var DefaultPause int = 0

func SetDefaultPause(pause int) {
	DefaultPause = max(0, pause)
}

// Bound of the alpha-beta window, any evaluation must be strictly inside (-ScoreInf, ScoreInf)
const ScoreInf int = 1 << 30
