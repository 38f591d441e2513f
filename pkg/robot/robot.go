// Package robot ties the chain tracker, the grid game state and the
// search engine together into single-frame decisions: world snapshot in,
// one direction (or "no change") out.
package robot

import (
	"math/rand"
	"time"

	"snakepit-robot/pkg/mcts"
	"snakepit-robot/pkg/snakepit"
)

type Config struct {
	// Search iterations per decision, a hard cap
	Iterations int

	// Maximum random moves per rollout
	RolloutDepth int

	// UCB1 exploration constant
	Exploration float64

	// Seed for the search's random source, 0 picks one from the clock
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Iterations:   mcts.DefaultCyclesLimit,
		RolloutDepth: mcts.DefaultRolloutDepthLimit,
		Exploration:  mcts.DefaultExploration,
	}
}

// DecisionTrace summarizes one finished search, for diagnostics
type DecisionTrace struct {
	Move     snakepit.Vector
	Agents   int
	Stats    mcts.TreeStats[snakepit.Vector]
	TreeDump string
}

type Robot struct {
	cfg     Config
	tracker *snakepit.Tracker
	random  *rand.Rand
	scanned bool

	// Trace, when set, receives a DecisionTrace after every search
	Trace func(DecisionTrace)
}

func New(color int, cfg Config) *Robot {
	if cfg.Iterations < 1 {
		cfg.Iterations = mcts.DefaultCyclesLimit
	}
	if cfg.RolloutDepth < 1 {
		cfg.RolloutDepth = mcts.DefaultRolloutDepthLimit
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Robot{
		cfg:     cfg,
		tracker: snakepit.NewTracker(color),
		random:  rand.New(rand.NewSource(seed)),
	}
}

// NextDirection decides the move for one frame. The first call (or an
// explicit initial=true) pays for a full grid scan, later calls refresh
// the chains incrementally. ok=false means "no change": the own snake is
// absent from the grid and there is nothing to steer.
//
// The decision is best-effort by construction: a dead or invisible
// opponent simply shrinks the simulation to one agent, it never fails
// the call.
func (r *Robot) NextDirection(world *snakepit.World, initial bool) (snakepit.Vector, bool) {
	if initial || !r.scanned {
		r.tracker.Scan(world)
		r.scanned = true
	} else {
		r.tracker.Refresh(world)
	}

	chains := r.tracker.Chains()
	if len(chains) == 0 {
		return snakepit.Vector{}, false
	}

	state, err := snakepit.NewGridState(world, chains)
	if err != nil {
		return snakepit.Vector{}, false
	}

	tree := mcts.New[snakepit.Vector](state).
		SetLimits(mcts.DefaultLimits().
			SetCycles(r.cfg.Iterations).
			SetRolloutDepth(r.cfg.RolloutDepth)).
		SetExploration(r.cfg.Exploration).
		SetRand(r.random)

	move, ok := tree.Search()
	if r.Trace != nil {
		r.Trace(DecisionTrace{
			Move:     move,
			Agents:   len(chains),
			Stats:    tree.Stats(),
			TreeDump: tree.Root.TreeString(),
		})
	}
	return move, ok
}
