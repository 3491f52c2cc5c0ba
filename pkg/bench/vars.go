package bench

import "time"

type SeedGeneratorFnType func() int64

// Seed source for the random players and the side assignment,
// by default uses current time in nanoseconds
var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// First terminal row used by the per-worker progress lines
const statsRowStart = 2
