package mcts

import "time"

type ChildStat[T MoveLike] struct {
	Move    T
	Visits  int32
	Results Result
}

type TreeStats[T MoveLike] struct {
	Cycles   int
	MaxDepth int
	Elapsed  time.Duration
	Children []ChildStat[T]
}

// Listener function callback, will receive current tree statistics, like
// max depth of the tree and the number of iterations so far
type ListenerFunc[T MoveLike] func(TreeStats[T])

type StatsListener[T MoveLike] struct {
	// called every N full iterations
	onCycle ListenerFunc[T]
	nCycles int

	// called once, after the last iteration completes
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

// Attach an on-iteration callback, called every N cycles (SetCycleInterval
// to set N). The stats snapshot copies the root children, so small N slows
// the search down noticeably.
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	listener.nCycles = max(1, n)
	return listener
}

// Attach an 'on search end' callback, called once after the iteration
// budget is exhausted
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener[T]) invokeCycle(tree *MCTS[T]) {
	if listener.onCycle != nil && tree.cycles%listener.nCycles == 0 {
		listener.onCycle(toTreeStats(tree))
	}
}

func (listener *StatsListener[T]) invokeStop(tree *MCTS[T]) {
	if listener.onStop != nil {
		listener.onStop(toTreeStats(tree))
	}
}

func toTreeStats[T MoveLike](tree *MCTS[T]) TreeStats[T] {
	return TreeStats[T]{
		Cycles:   tree.cycles,
		MaxDepth: tree.maxdepth,
		Elapsed:  tree.timer.Elapsed(),
		Children: tree.RootStats(),
	}
}
