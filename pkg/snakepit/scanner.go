package snakepit

// Chain is one snake's body as an ordered, head-first list of grid
// positions. All positions are distinct. Simulation mutates it only by
// pushing a new head and dropping the tail; between frames the tracker
// adjusts it incrementally from the grid diff.
type Chain []Position

func (c Chain) Head() Position {
	return c[0]
}

func (c Chain) Tail() Position {
	return c[len(c)-1]
}

func (c Chain) Contains(p Position) bool {
	for _, segment := range c {
		if segment == p {
			return true
		}
	}
	return false
}

func (c Chain) Clone() Chain {
	clone := make(Chain, len(c))
	copy(clone, c)
	return clone
}

type trackedSnake struct {
	color int
	chain Chain
}

// Tracker reconstructs the body chain of each living snake from a world
// snapshot. The first frame costs a full grid scan; afterwards Refresh
// follows the head and tail around by inspecting only their old
// neighborhood, so keeping chains current is constant work per frame.
type Tracker struct {
	ownColor int
	snakes   []trackedSnake
}

func NewTracker(ownColor int) *Tracker {
	return &Tracker{ownColor: ownColor}
}

// Scan rebuilds all chains from scratch. The own snake is tracked first;
// an opponent is tracked only alongside a living own snake. A missing
// own head yields no tracked snakes at all: the owner is dead or not yet
// drawn, and there is nothing to decide for.
//
// Should the grid ever hold two heads of one color, the first in
// row-major order wins.
func (t *Tracker) Scan(w *World) {
	t.snakes = t.snakes[:0]

	ownHead, ownFound := Position{}, false
	otherHead, otherFound := Position{}, false
	otherColor := ColorNone

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			cell := w.At(Position{x, y})
			if cell.Char != CharHead {
				continue
			}
			if cell.Color == t.ownColor {
				if !ownFound {
					ownHead, ownFound = Position{x, y}, true
				}
			} else if !otherFound {
				otherHead, otherFound = Position{x, y}, true
				otherColor = cell.Color
			}
		}
	}

	if !ownFound {
		return
	}

	t.snakes = append(t.snakes, trackedSnake{
		color: t.ownColor,
		chain: walkChain(w, ownHead, t.ownColor),
	})
	if otherFound {
		t.snakes = append(t.snakes, trackedSnake{
			color: otherColor,
			chain: walkChain(w, otherHead, otherColor),
		})
	}
}

// Refresh updates every tracked chain against a new frame by looking
// only at the old head and tail neighborhoods. A snake whose head symbol
// can no longer be found nearby has died and is dropped.
func (t *Tracker) Refresh(w *World) {
	alive := t.snakes[:0]

	for _, snake := range t.snakes {
		head, ok := findPart(w, snake.chain.Head(), CharHead, snake.color)
		if !ok {
			continue
		}
		if head != snake.chain.Head() {
			snake.chain = append(Chain{head}, snake.chain...)
		}

		if tail, ok := findPart(w, snake.chain.Tail(), CharTail, snake.color); ok && tail != snake.chain.Tail() {
			snake.chain = snake.chain[:len(snake.chain)-1]
		}

		alive = append(alive, snake)
	}

	// Own snake gone means nothing left to decide for
	if len(alive) > 0 && alive[0].color != t.ownColor {
		alive = alive[:0]
	}
	t.snakes = alive
}

// Chains returns the tracked chains, own snake first. The result aliases
// the tracker's state, callers clone before simulating.
func (t *Tracker) Chains() []Chain {
	chains := make([]Chain, len(t.snakes))
	for i, snake := range t.snakes {
		chains[i] = snake.chain
	}
	return chains
}

// Own returns the controlled snake's chain, ok=false when it is absent
func (t *Tracker) Own() (Chain, bool) {
	if len(t.snakes) == 0 || t.snakes[0].color != t.ownColor {
		return nil, false
	}
	return t.snakes[0].chain, true
}

// walkChain follows a snake from its head: at every step the next
// segment is the neighbor (excluding the cell we came from) drawn as
// body or tail in the chain's color. A true tail has no such neighbor,
// which ends the walk.
func walkChain(w *World, head Position, color int) Chain {
	chain := Chain{head}
	prev, cur := head, head

	for {
		next, ok := nextSegment(w, cur, prev, color)
		if !ok {
			return chain
		}
		chain = append(chain, next)
		prev, cur = cur, next
	}
}

func nextSegment(w *World, pos, prev Position, color int) (Position, bool) {
	for _, n := range pos.Neighbours() {
		if n == prev {
			continue
		}
		cell := w.At(n)
		if (cell.Char == CharBody || cell.Char == CharTail) && cell.Color == color {
			return n, true
		}
	}
	return Position{}, false
}

// findPart looks for the given symbol in old's 4-neighborhood, falling
// back to old itself (the part may not have moved this frame)
func findPart(w *World, old Position, ch byte, color int) (Position, bool) {
	for _, n := range old.Neighbours() {
		if cell := w.At(n); cell.Char == ch && cell.Color == color {
			return n, true
		}
	}
	if cell := w.At(old); cell.Char == ch && cell.Color == color {
		return old, true
	}
	return Position{}, false
}
