package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCB1 formula, higher values increase
// exploration while lower values increase exploitation. The theoretical
// value is sqrt(2), which reproduces the classic
// results/visits + sqrt(2*ln(parent_visits)/visits) formula.
const DefaultExploration float64 = math.Sqrt2

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
