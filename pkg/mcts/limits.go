package mcts

type Limits struct {
	// Number of search iterations, a hard cap with no mid-search
	// cancellation. The root's visit count equals exactly this value
	// once the search completes.
	Cycles int

	// Maximum number of random moves applied during a single rollout,
	// rollouts still end early on a terminal state
	RolloutDepth int
}

const (
	DefaultCyclesLimit       int = 50
	DefaultRolloutDepthLimit int = 5
)

func DefaultLimits() *Limits {
	return &Limits{
		Cycles:       DefaultCyclesLimit,
		RolloutDepth: DefaultRolloutDepthLimit,
	}
}

// Set the number of backpropagation cycles of the search
func (l *Limits) SetCycles(cycles int) *Limits {
	l.Cycles = max(1, cycles)
	return l
}

// Set the maximum rollout depth per iteration
func (l *Limits) SetRolloutDepth(depth int) *Limits {
	l.RolloutDepth = max(1, depth)
	return l
}
