package mcts

import (
	"fmt"
	"math"
)

// selectNode walks the tree from the root: terminal nodes are returned as-is
// (their rollout resolves immediately), nodes with an untried move get
// exactly one new child, fully expanded nodes are descended through the
// UCB1 rule.
func (m *MCTS[S, T]) selectNode() *Node[S, T] {
	node := m.root
	for {
		if node.State.Status().Terminal {
			return node
		}
		if !node.fullyExpanded {
			return m.expand(node)
		}
		node = m.descend(node)
	}
}

// expand materializes one child for a move not yet represented under node,
// chosen uniformly at random, and marks the node fully expanded once the
// last missing move has been tried.
func (m *MCTS[S, T]) expand(node *Node[S, T]) *Node[S, T] {
	mover := node.State.Status().ToMove
	moves := node.State.LegalMoves(mover)
	if len(moves) == 0 {
		panic(fmt.Sprintf("mcts: non-terminal state reported no legal moves for %v", mover))
	}

	tried := make(map[T]struct{}, len(node.Children))
	for _, child := range node.Children {
		tried[child.Move] = struct{}{}
	}
	untried := make([]T, 0, len(moves)-len(node.Children))
	for _, move := range moves {
		if _, ok := tried[move]; !ok {
			untried = append(untried, move)
		}
	}
	if len(untried) == 0 {
		panic("mcts: expand called on a fully expanded node")
	}

	move := untried[m.random.Intn(len(untried))]
	child := newNode(node, node.State.Apply(move, mover), move)
	node.Children = append(node.Children, child)
	if len(node.Children) == len(moves) {
		node.fullyExpanded = true
	}
	m.size++

	return child
}

// descend picks the child maximizing the UCB1 score
// wins/plays + C * sqrt(ln(parent plays)/plays). Ties are broken by the
// first child encountered. Every child has been visited before its parent
// becomes fully expanded, so zero-play children are a caller bug.
func (m *MCTS[S, T]) descend(node *Node[S, T]) *Node[S, T] {
	if node.plays == 0 {
		panic("mcts: ucb1 on a node with no plays")
	}

	lnParent := math.Log(float64(node.plays))
	best := math.Inf(-1)
	var pick *Node[S, T]

	for _, child := range node.Children {
		if child.plays == 0 {
			panic("mcts: ucb1 over an unvisited child")
		}

		ucb1 := float64(child.wins)/float64(child.plays) +
			m.exploration*math.Sqrt(lnParent/float64(child.plays))
		if ucb1 > best {
			best = ucb1
			pick = child
		}
	}

	return pick
}
