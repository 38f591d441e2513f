package mcts

// Other small types, which didn't fit to MCTS or Node files

// Result of a playout from some agent's viewpoint. Unlike canonical UCT
// this is NOT restricted to [0, 1]: the grid game backpropagates raw
// accumulated scores, including its loss sentinel. See the note on
// SetExploration for the calibration consequences.
type Result float64

// Anything comparable may act as a move signature in the tree
type MoveLike comparable

// GameState is the capability contract a deterministic two-player
// zero-sum game must satisfy to be searchable. By convention the agents
// are numbered 0 and 1.
type GameState[T MoveLike] interface {
	// Independent copy: mutable parts (chains, scores, last actions)
	// share no memory with the receiver; immutable parts (the terrain
	// snapshot) may be shared by reference.
	Clone() GameState[T]

	// Carry out the given move for the currently-moving agent.
	// Must update the just-moved agent index.
	DoMove(T)

	// All moves the currently-moving agent may take from this state.
	// Empty only when the state is terminal for that agent.
	Moves() []T

	// Objective value of this state from the given agent's viewpoint,
	// used only at rollout termination.
	Result(agent int) Result

	// Index of the agent whose move produced this state.
	JustMoved() int
}
