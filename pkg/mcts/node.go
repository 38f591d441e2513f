package mcts

import (
	"fmt"
	"math"
	"strings"
)

// Node is a single explored move in the game tree. The Parent pointer
// exists only so backpropagation can walk towards the root; children are
// owned by their parent. Move, Parent and JustMoved are fixed at
// creation, only the result/visit counters grow afterwards.
type Node[T MoveLike] struct {
	// The move that produced this node, zero value for the root
	Move T

	Parent   *Node[T]
	Children []*Node[T]

	// Moves not yet expanded into children from this node's state
	Untried []T

	// The agent whose move produced this node, captured at creation.
	// Backpropagated results are always read from this agent's viewpoint.
	JustMoved int

	results Result
	visits  int32
}

func newRootNode[T MoveLike](state GameState[T]) *Node[T] {
	return &Node[T]{
		Untried:   state.Moves(),
		JustMoved: state.JustMoved(),
	}
}

// Cumulated playout results recorded at this node
func (node *Node[T]) Results() Result {
	return node.results
}

// Number of completed search iterations that passed through this node
func (node *Node[T]) Visits() int32 {
	return node.visits
}

// Average recorded result, NaN before the first visit
func (node *Node[T]) AvgResult() Result {
	return node.results / Result(node.visits)
}

// SelectChild picks the child maximizing the UCB1 value
//
//	results/visits + c * sqrt(ln(parent_visits)/visits)
//
// Ties keep the first maximal child in child order. Callers invoke this
// only on fully expanded nodes, but an unvisited child is still returned
// outright, its UCB1 value would be infinite anyway.
func (node *Node[T]) SelectChild(c float64) *Node[T] {
	best := node.Children[0]
	bestValue := math.Inf(-1)
	lnVisits := math.Log(float64(node.visits))

	for _, child := range node.Children {
		if child.visits == 0 {
			return child
		}

		ucb1 := float64(child.results)/float64(child.visits) +
			c*math.Sqrt(lnVisits/float64(child.visits))

		if ucb1 > bestValue {
			bestValue = ucb1
			best = child
		}
	}

	return best
}

// Expand removes move from the untried set and adds a new child node
// for it, capturing the just-moved agent of the resulting state.
// Returns the added child.
func (node *Node[T]) Expand(move T, state GameState[T]) *Node[T] {
	for i, untried := range node.Untried {
		if untried == move {
			node.Untried = append(node.Untried[:i], node.Untried[i+1:]...)
			break
		}
	}

	child := &Node[T]{
		Move:      move,
		Parent:    node,
		Untried:   state.Moves(),
		JustMoved: state.JustMoved(),
	}
	node.Children = append(node.Children, child)
	return child
}

// Record one additional visit with the given playout result
func (node *Node[T]) Record(result Result) {
	node.visits++
	node.results += result
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("[M:%v R/V:%.1f/%d U:%v]",
		node.Move, float64(node.results), node.visits, node.Untried)
}

// TreeString renders the whole subtree, one node per line, indented by
// depth. Used only for verbose diagnostics.
func (node *Node[T]) TreeString() string {
	builder := strings.Builder{}
	node.writeTree(&builder, 0)
	return builder.String()
}

func (node *Node[T]) writeTree(builder *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		builder.WriteString("| ")
	}
	builder.WriteString(node.String())
	builder.WriteByte('\n')
	for _, child := range node.Children {
		child.writeTree(builder, indent+1)
	}
}
