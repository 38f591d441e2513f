// Package arena plays two robots against each other on a simulated
// world, standing in for the real server. It owns the authoritative
// grid: snakes are drawn onto it, frames are what the robots see, and
// running into anything that is not void or a numeral is death.
package arena

import (
	"fmt"
	"math/rand"

	"snakepit-robot/pkg/robot"
	"snakepit-robot/pkg/snakepit"
)

type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1:
		return "player 1 wins"
	case OutcomePlayer2:
		return "player 2 wins"
	}
	return "draw"
}

type Result struct {
	Outcome Outcome
	Turns   int
	Scores  [2]int
}

type snakeState struct {
	color   int
	chain   snakepit.Chain
	lastDir snakepit.Vector
	score   int
	alive   bool
}

type Match struct {
	world    *snakepit.World
	snakes   [2]snakeState
	maxTurns int

	// OnTurn, when set, observes the world after every full turn
	OnTurn func(turn int, world *snakepit.World)
}

const minArenaSize = 9

// NewMatch builds a bordered world with both snakes placed in opposite
// corners and the given number of numeral pickups scattered over the
// void. Dimensions below 9x9 are clamped up so the layout always fits.
func NewMatch(width, height, numerals, maxTurns int, seed int64) *Match {
	width = max(width, minArenaSize)
	height = max(height, minArenaSize)

	world := snakepit.NewBorderedWorld(width, height)
	match := &Match{
		world:    world,
		maxTurns: maxTurns,
	}

	match.snakes[0] = snakeState{
		color: 1,
		chain: snakepit.Chain{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}},
		alive: true,
	}
	match.snakes[1] = snakeState{
		color: 2,
		chain: snakepit.Chain{{X: width - 3, Y: height - 3}, {X: width - 3, Y: height - 4}, {X: width - 3, Y: height - 5}},
		alive: true,
	}
	for i := range match.snakes {
		match.draw(i)
	}

	// Clamp to the free cells so placement always terminates
	free := 0
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if world.At(snakepit.Position{X: x, Y: y}).Char == snakepit.CharVoid {
				free++
			}
		}
	}
	numerals = min(numerals, free)

	random := rand.New(rand.NewSource(seed))
	for placed := 0; placed < numerals; {
		p := snakepit.Position{
			X: 1 + random.Intn(width-2),
			Y: 1 + random.Intn(height-2),
		}
		if world.At(p).Char != snakepit.CharVoid {
			continue
		}
		world.Set(p, byte('1'+random.Intn(9)), snakepit.ColorNone)
		placed++
	}

	return match
}

func (m *Match) World() *snakepit.World {
	return m.world
}

// Colors returns the assigned snake colors, in player order
func (m *Match) Colors() [2]int {
	return [2]int{m.snakes[0].color, m.snakes[1].color}
}

// Play runs the match until one snake dies or the turn cap is hit.
// A snake answering "no change" keeps sliding in its last direction.
func (m *Match) Play(bot1, bot2 *robot.Robot) Result {
	bots := [2]*robot.Robot{bot1, bot2}
	turns := 0

	for turn := 0; turn < m.maxTurns; turn++ {
		for i := range m.snakes {
			if !m.snakes[i].alive {
				continue
			}
			if move, ok := bots[i].NextDirection(m.world, turn == 0); ok {
				m.snakes[i].lastDir = move
			}
			if m.snakes[i].lastDir.IsZero() {
				continue
			}
			m.step(i)
		}

		turns = turn + 1
		if m.OnTurn != nil {
			m.OnTurn(turn, m.world)
		}
		if !m.snakes[0].alive || !m.snakes[1].alive {
			break
		}
	}

	return Result{
		Outcome: m.outcome(),
		Turns:   turns,
		Scores:  [2]int{m.snakes[0].score, m.snakes[1].score},
	}
}

// step slides snake i one cell in its last direction, eating numerals
// and dying on everything else that is not void
func (m *Match) step(i int) {
	s := &m.snakes[i]
	oldHead := s.chain.Head()
	oldTail := s.chain.Tail()
	newHead := oldHead.Add(s.lastDir)

	cell := m.world.At(newHead)
	switch {
	case snakepit.IsNumeral(cell.Char):
		s.score += snakepit.NumeralValue(cell.Char)
	case cell.Char != snakepit.CharVoid:
		m.kill(i)
		return
	}

	copy(s.chain[1:], s.chain[:len(s.chain)-1])
	s.chain[0] = newHead

	m.world.Set(oldTail, snakepit.CharVoid, snakepit.ColorNone)
	m.draw(i)
}

// draw repaints the whole chain: head, body run, tail
func (m *Match) draw(i int) {
	s := &m.snakes[i]
	last := len(s.chain) - 1
	for j, p := range s.chain {
		ch := snakepit.CharBody
		switch j {
		case 0:
			ch = snakepit.CharHead
		case last:
			ch = snakepit.CharTail
		}
		m.world.Set(p, ch, s.color)
	}
}

// kill repaints the chain with dead markers and drops the snake
func (m *Match) kill(i int) {
	s := &m.snakes[i]
	last := len(s.chain) - 1
	for j, p := range s.chain {
		ch := snakepit.CharDeadBody
		switch j {
		case 0:
			ch = snakepit.CharDeadHead
		case last:
			ch = snakepit.CharDeadTail
		}
		m.world.Set(p, ch, s.color)
	}
	s.alive = false
}

func (m *Match) outcome() Outcome {
	alive1, alive2 := m.snakes[0].alive, m.snakes[1].alive
	switch {
	case alive1 && !alive2:
		return OutcomePlayer1
	case alive2 && !alive1:
		return OutcomePlayer2
	}

	// Both survived the cap or died the same turn: scores decide
	switch {
	case m.snakes[0].score > m.snakes[1].score:
		return OutcomePlayer1
	case m.snakes[1].score > m.snakes[0].score:
		return OutcomePlayer2
	}
	return OutcomeDraw
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d turns (scores %d:%d)",
		r.Outcome, r.Turns, r.Scores[0], r.Scores[1])
}
