package snakepit

import (
	"testing"
)

func openWorld(t *testing.T, size int) *World {
	t.Helper()
	return NewWorld(size, size)
}

func singleState(t *testing.T, world *World, chain Chain) *GridState {
	t.Helper()
	state, err := NewGridState(world, []Chain{chain})
	if err != nil {
		t.Fatal(err)
	}
	return state
}

func TestMovesNoPriorAction(t *testing.T) {
	state := singleState(t, openWorld(t, 5), Chain{{2, 2}})

	moves := state.Moves()
	if len(moves) != 4 {
		t.Fatalf("moves = %v, want all four directions", moves)
	}
}

func TestMovesExcludeReversal(t *testing.T) {
	for _, d := range Directions {
		state := singleState(t, openWorld(t, 7), Chain{{3, 3}})
		state.DoMove(d)

		moves := state.Moves()
		if len(moves) != 3 {
			t.Fatalf("after %v: moves = %v, want 3", d, moves)
		}
		for _, m := range moves {
			if m == d.Opposite() {
				t.Fatalf("after %v: reverse %v still legal", d, m)
			}
		}
	}
}

func TestDoMoveKeepsChainLength(t *testing.T) {
	chain := Chain{{3, 3}, {3, 4}, {4, 4}}
	state := singleState(t, openWorld(t, 7), chain)

	state.DoMove(Up)
	state.DoMove(Right)

	got := state.chains[0]
	if len(got) != len(chain) {
		t.Fatalf("chain length %d, want %d", len(got), len(chain))
	}
	if got.Head() != (Position{4, 2}) {
		t.Fatalf("head = %v, want {4 2}", got.Head())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	world := openWorld(t, 5)
	state := singleState(t, world, Chain{{2, 2}, {2, 3}})

	clone := state.Clone().(*GridState)
	clone.DoMove(Up)
	clone.scores[0] = 99

	if state.chains[0].Head() != (Position{2, 2}) {
		t.Fatalf("original chain mutated: %v", state.chains[0])
	}
	if state.scores[0] != 0 {
		t.Fatalf("original score mutated: %d", state.scores[0])
	}
	if !state.lastAction[0].IsZero() {
		t.Fatalf("original last action mutated: %v", state.lastAction[0])
	}
	if clone.world != state.world {
		t.Fatal("terrain snapshot copied, want shared reference")
	}
}

func TestDoMoveNumeralPickup(t *testing.T) {
	world := openWorld(t, 5)
	world.Set(Position{2, 1}, '7', ColorNone)
	state := singleState(t, world, Chain{{2, 2}})

	state.DoMove(Up)
	if state.Result(0) != 7 {
		t.Fatalf("score = %v, want 7", state.Result(0))
	}

	// Pickups accumulate
	world.Set(Position{2, 0}, '2', ColorNone)
	state.DoMove(Up)
	if state.Result(0) != 9 {
		t.Fatalf("score = %v, want 9", state.Result(0))
	}
}

func TestDoMoveBlockingCells(t *testing.T) {
	for _, ch := range []byte{CharStone, CharBorderHorizontal, CharBorderVertical, CharBorderCorner, CharDeadHead, CharDeadBody, CharDeadTail} {
		world := openWorld(t, 5)
		world.Set(Position{2, 1}, ch, ColorNone)
		state := singleState(t, world, Chain{{2, 2}})

		state.DoMove(Up)
		if state.Result(0) != LossScore {
			t.Fatalf("%q: score = %v, want loss sentinel", ch, state.Result(0))
		}
	}
}

func TestDoMoveOffGridIsLoss(t *testing.T) {
	// No frame drawn: out-of-bounds reads as stone
	state := singleState(t, openWorld(t, 3), Chain{{1, 0}})

	state.DoMove(Up)
	if state.Result(0) != LossScore {
		t.Fatalf("score = %v, want loss sentinel", state.Result(0))
	}
}

func TestDoMoveSelfCollision(t *testing.T) {
	// Hook-shaped snake, moving left hits its own body
	chain := Chain{{3, 2}, {3, 3}, {2, 3}, {2, 2}, {2, 1}}
	state := singleState(t, openWorld(t, 7), chain)

	state.DoMove(Left)
	if state.Result(0) != LossScore {
		t.Fatalf("score = %v, want loss sentinel", state.Result(0))
	}
	if len(state.chains[0]) != len(chain) {
		t.Fatal("collision changed chain length")
	}
}

func TestDoMoveOpponentCollision(t *testing.T) {
	world := openWorld(t, 7)
	own := Chain{{2, 2}}
	opponent := Chain{{3, 1}, {3, 2}, {3, 3}}
	state, err := NewGridState(world, []Chain{own, opponent})
	if err != nil {
		t.Fatal(err)
	}

	// Agent 0 moves first, straight into the opponent's body
	state.DoMove(Right)
	if state.Result(0) != LossScore {
		t.Fatalf("own score = %v, want loss sentinel", state.Result(0))
	}
	if state.Result(1) != 0 {
		t.Fatalf("opponent score = %v, want 0", state.Result(1))
	}
}

func TestTurnAlternation(t *testing.T) {
	world := openWorld(t, 9)
	state, err := NewGridState(world, []Chain{{{2, 2}}, {{6, 6}}})
	if err != nil {
		t.Fatal(err)
	}

	if state.JustMoved() != 1 {
		t.Fatalf("root just-moved = %d, want 1", state.JustMoved())
	}
	state.DoMove(Up)
	if state.JustMoved() != 0 {
		t.Fatalf("after first move just-moved = %d, want 0", state.JustMoved())
	}
	state.DoMove(Up)
	if state.JustMoved() != 1 {
		t.Fatalf("after second move just-moved = %d, want 1", state.JustMoved())
	}
}

func TestSingleAgentAlwaysMoves(t *testing.T) {
	state := singleState(t, openWorld(t, 9), Chain{{4, 4}})

	state.DoMove(Up)
	state.DoMove(Left)
	if state.JustMoved() != 0 {
		t.Fatalf("just-moved = %d, want 0 for a single agent", state.JustMoved())
	}
	if state.chains[0].Head() != (Position{3, 3}) {
		t.Fatalf("head = %v, want {3 3}", state.chains[0].Head())
	}
}

func TestNewGridStateRejectsBadChains(t *testing.T) {
	world := openWorld(t, 5)
	if _, err := NewGridState(world, nil); err == nil {
		t.Fatal("no error for zero chains")
	}
	if _, err := NewGridState(world, []Chain{{}, {{1, 1}}}); err == nil {
		t.Fatal("no error for an empty chain")
	}
	if _, err := NewGridState(world, []Chain{{{1, 1}}, {{2, 2}}, {{3, 3}}}); err == nil {
		t.Fatal("no error for three chains")
	}
}
