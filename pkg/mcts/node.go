package mcts

import "math"

// Node is a single position in the search tree. A node owns its children;
// the Parent pointer is a navigation aid for backpropagation and the reuse
// search, it never keeps a node alive on its own.
type Node[S GameState[S, T], T comparable] struct {
	// State is the position this node represents.
	State S

	// Move transitioned the parent into this node, the zero value of T on
	// the root.
	Move T

	Parent   *Node[S, T]
	Children []*Node[S, T]

	plays int32
	wins  int32

	fullyExpanded bool
	closed        bool
}

func newNode[S GameState[S, T], T comparable](parent *Node[S, T], state S, move T) *Node[S, T] {
	return &Node[S, T]{
		State:  state,
		Move:   move,
		Parent: parent,
		closed: state.Status().Terminal,
	}
}

func newRootNode[S GameState[S, T], T comparable](state S) *Node[S, T] {
	var noMove T
	return newNode[S, T](nil, state, noMove)
}

func (node *Node[S, T]) Plays() int32 { return node.plays }

func (node *Node[S, T]) Wins() int32 { return node.wins }

// WinRate is wins/plays, NaN while the node has no plays.
func (node *Node[S, T]) WinRate() float64 {
	if node.plays == 0 {
		return math.NaN()
	}
	return float64(node.wins) / float64(node.plays)
}

// FullyExpanded reports whether every legal move from State has a child.
func (node *Node[S, T]) FullyExpanded() bool { return node.fullyExpanded }

// Closed reports whether every line below this node ends in a terminal
// state, i.e. nothing in the subtree is left to expand.
func (node *Node[S, T]) Closed() bool { return node.closed }

// Helper function to count tree nodes
func countTreeNodes[S GameState[S, T], T comparable](node *Node[S, T]) int {
	nodes := 1
	for _, child := range node.Children {
		nodes += countTreeNodes(child)
	}
	return nodes
}
