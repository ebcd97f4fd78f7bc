package mcts

import (
	"math"
	"time"
)

// Exploration constant used in the UCB1 formula, higher values increase
// exploration while lower values increase exploitation. Default is 2*sqrt(2).
var DefaultExploration = 2 * math.Sqrt2

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
