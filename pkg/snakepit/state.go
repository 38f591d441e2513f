package snakepit

import (
	"fmt"

	"snakepit-robot/pkg/mcts"
)

// LossScore is the sentinel assigned to an agent whose move ran into a
// snake body, a stone, the frame, or dead remains. It is deliberately
// far below anything numerals can accumulate, a branch carrying it is a
// lost branch.
const LossScore = -1000

// GridState is the searchable form of one frame: the shared terrain
// snapshot plus the per-agent chains, scores and last actions. It holds
// one or two agents; agent 0 is the controlled snake. With two agents
// moves strictly alternate, with one the same agent always moves.
type GridState struct {
	world      *World
	chains     []Chain
	scores     [2]int
	lastAction [2]Vector
	justMoved  int
}

// NewGridState wraps a terrain snapshot and chains. The chains are
// cloned, simulation never touches the caller's copies. At the root the
// pretend just-moved agent is 1, so agent 0 takes the first move.
func NewGridState(world *World, chains []Chain) (*GridState, error) {
	if len(chains) < 1 || len(chains) > 2 {
		return nil, fmt.Errorf("grid state: got %d chains, want 1 or 2", len(chains))
	}

	owned := make([]Chain, len(chains))
	for i, chain := range chains {
		if len(chain) == 0 {
			return nil, fmt.Errorf("grid state: chain %d is empty", i)
		}
		owned[i] = chain.Clone()
	}

	return &GridState{
		world:     world,
		chains:    owned,
		justMoved: 1,
	}, nil
}

// Clone deep-copies the chains and counters, the terrain stays shared
func (s *GridState) Clone() mcts.GameState[Vector] {
	chains := make([]Chain, len(s.chains))
	for i, chain := range s.chains {
		chains[i] = chain.Clone()
	}
	return &GridState{
		world:      s.world,
		chains:     chains,
		scores:     s.scores,
		lastAction: s.lastAction,
		justMoved:  s.justMoved,
	}
}

func (s *GridState) JustMoved() int {
	return s.justMoved
}

// moving is the agent taking the next move
func (s *GridState) moving() int {
	if len(s.chains) > 1 {
		return 1 - s.justMoved
	}
	return 0
}

// Moves returns the four directions minus the exact reverse of the
// moving agent's last action. Collisions are not checked here, they are
// scored in DoMove; a fully trapped snake therefore still has moves,
// they just all lose.
func (s *GridState) Moves() []Vector {
	moves := make([]Vector, 0, 4)
	last := s.lastAction[s.moving()]

	for _, d := range Directions {
		if !last.IsZero() && d == last.Opposite() {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

// DoMove advances the moving agent one cell. Scoring, in order: any
// snake body (own included) at the destination is a loss; a numeral adds
// its value; stones, the frame and dead remains are a loss; anything
// else leaves the score alone. Then the new head is pushed and the tail
// popped, so the chain length never changes (growth is not modeled).
func (s *GridState) DoMove(move Vector) {
	if len(s.chains) > 1 {
		s.justMoved = 1 - s.justMoved
	} else {
		s.justMoved = 0
	}
	agent := s.justMoved
	s.lastAction[agent] = move

	chain := s.chains[agent]
	head := chain.Head().Add(move)
	cell := s.world.At(head)

	switch {
	case s.collides(head):
		s.scores[agent] = LossScore
	case IsNumeral(cell.Char):
		s.scores[agent] += NumeralValue(cell.Char)
	case isBlocking(cell.Char):
		s.scores[agent] = LossScore
	}

	// Shift the chain right: head in, tail out
	copy(chain[1:], chain[:len(chain)-1])
	chain[0] = head
}

// Result is the agent's accumulated score, read at rollout termination
func (s *GridState) Result(agent int) mcts.Result {
	return mcts.Result(s.scores[agent])
}

func (s *GridState) collides(p Position) bool {
	for _, chain := range s.chains {
		if chain.Contains(p) {
			return true
		}
	}
	return false
}

func (s *GridState) String() string {
	return fmt.Sprintf("moved: %d, chains: %v, scores: %v, last: %v",
		s.justMoved, s.chains, s.scores, s.lastAction)
}
