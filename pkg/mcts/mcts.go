package mcts

import (
	"fmt"
	"math/rand"
	"slices"
)

// MCTS runs UCT over a single decision: a fresh tree is built per search
// and discarded with it, nothing is reused across decisions. The engine
// is single-threaded and synchronous, one search runs to completion
// before the chosen move is returned.
type MCTS[T MoveLike] struct {
	Root *Node[T]

	rootState   GameState[T]
	limits      *Limits
	exploration float64
	random      *rand.Rand
	listener    *StatsListener[T]
	timer       *_Timer
	maxdepth    int
	cycles      int
}

// Create a new tree rooted in the given state. The state is cloned for
// every iteration, the original is never mutated by the search.
func New[T MoveLike](rootState GameState[T]) *MCTS[T] {
	return &MCTS[T]{
		Root:        newRootNode(rootState),
		rootState:   rootState,
		limits:      DefaultLimits(),
		exploration: DefaultExploration,
		random:      rand.New(rand.NewSource(SeedGeneratorFn())),
		listener:    &StatsListener[T]{nCycles: 1},
		timer:       _NewTimer(),
	}
}

func (tree *MCTS[T]) SetLimits(limits *Limits) *MCTS[T] {
	tree.limits = limits
	return tree
}

func (tree *MCTS[T]) Limits() *Limits {
	return tree.limits
}

// Set the UCB1 exploration constant. Note that with unbounded results
// (as in the grid game, where a single loss sentinel is three orders of
// magnitude larger than a resource pickup) the exploration term is
// dwarfed by the exploitation term, so tuning this constant has little
// effect there.
func (tree *MCTS[T]) SetExploration(c float64) *MCTS[T] {
	tree.exploration = max(0, c)
	return tree
}

// Set the random source used for expansion and rollout move picks,
// allowing reproducible searches under a fixed seed
func (tree *MCTS[T]) SetRand(random *rand.Rand) *MCTS[T] {
	if random != nil {
		tree.random = random
	}
	return tree
}

func (tree *MCTS[T]) SetListener(listener StatsListener[T]) *MCTS[T] {
	*tree.listener = listener
	return tree
}

func (tree *MCTS[T]) StatsListener() *StatsListener[T] {
	return tree.listener
}

// Total number of completed iterations
func (tree *MCTS[T]) Cycles() int {
	return tree.cycles
}

// Deepest select/expand path reached so far, diagnostics only
func (tree *MCTS[T]) MaxDepth() int {
	return tree.maxdepth
}

// Search runs the configured number of iterations and returns the move
// of the root child with the most visits. ok is false only when the
// root state has no legal moves at all.
func (tree *MCTS[T]) Search() (move T, ok bool) {
	tree.timer.Reset()

	for i := 0; i < tree.limits.Cycles; i++ {
		node := tree.Root
		state := tree.rootState.Clone()
		depth := 0

		// Selection: descend while fully expanded and non-leaf
		for len(node.Untried) == 0 && len(node.Children) > 0 {
			node = node.SelectChild(tree.exploration)
			state.DoMove(node.Move)
			depth++
		}

		// Expansion: try one untried move at random
		if len(node.Untried) > 0 {
			m := node.Untried[tree.random.Intn(len(node.Untried))]
			state.DoMove(m)
			node = node.Expand(m, state)
			depth++
		}

		// Rollout: random legal moves on the working clone, ending
		// early on a terminal state
		for j := 0; j < tree.limits.RolloutDepth; j++ {
			moves := state.Moves()
			if len(moves) == 0 {
				break
			}
			state.DoMove(moves[tree.random.Intn(len(moves))])
		}

		// Backpropagation: each node on the path is credited from the
		// viewpoint of its own just-moved agent
		for n := node; n != nil; n = n.Parent {
			n.Record(state.Result(n.JustMoved))
		}

		tree.cycles++
		if depth > tree.maxdepth {
			tree.maxdepth = depth
		}
		tree.listener.invokeCycle(tree)
	}

	move, ok = tree.BestMove()
	tree.listener.invokeStop(tree)
	return move, ok
}

// BestMove returns the move of the most visited direct child of the
// root. Children are stably sorted ascending by visit count and the last
// one is taken, so among equally visited children the latest in child
// order wins. That tie-break is deliberate and load-bearing for
// reproducibility, keep it when touching this code.
func (tree *MCTS[T]) BestMove() (T, bool) {
	var zero T
	if len(tree.Root.Children) == 0 {
		return zero, false
	}

	ranked := make([]*Node[T], len(tree.Root.Children))
	copy(ranked, tree.Root.Children)
	slices.SortStableFunc(ranked, func(a, b *Node[T]) int {
		return int(a.visits - b.visits)
	})

	return ranked[len(ranked)-1].Move, true
}

// Stats snapshots the tree counters and per-child summaries
func (tree *MCTS[T]) Stats() TreeStats[T] {
	return toTreeStats(tree)
}

// Per-child summary of the root, ordered by child creation
func (tree *MCTS[T]) RootStats() []ChildStat[T] {
	stats := make([]ChildStat[T], len(tree.Root.Children))
	for i, child := range tree.Root.Children {
		stats[i] = ChildStat[T]{
			Move:    child.Move,
			Visits:  child.Visits(),
			Results: child.Results(),
		}
	}
	return stats
}

func (tree *MCTS[T]) String() string {
	return fmt.Sprintf("MCTS={Cycles=%d, MaxDepth=%d, Elapsed=%s, Root=%v}",
		tree.cycles, tree.maxdepth, tree.timer.Elapsed(), tree.Root)
}
