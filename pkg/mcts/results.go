package mcts

import "math"

// ChildStat is a read-only snapshot of one root child.
type ChildStat[T comparable] struct {
	Move  T
	Plays int32
	Wins  int32
}

// SearchResult is the diagnostics snapshot exposed to hosts.
type SearchResult[T comparable] struct {
	// BestMove is the robust child's move, the zero value while the root has
	// no children.
	BestMove T

	// Simulations is the root's total play count.
	Simulations int32

	// Confidence is the robust child's win rate, NaN before its first play.
	Confidence float64

	// Children holds the statistics of every root child.
	Children []ChildStat[T]
}

// BestAction returns the robust child's move: most plays, ties broken by
// more wins, residual ties uniformly at random. Returns the zero value of T
// when the root has no children; callers must run at least one iteration
// before asking for a move.
func (m *MCTS[S, T]) BestAction() T {
	var noMove T
	if best := m.bestChild(); best != nil {
		return best.Move
	}
	return noMove
}

func (m *MCTS[S, T]) bestChild() *Node[S, T] {
	var tied []*Node[S, T]
	for _, child := range m.root.Children {
		if len(tied) == 0 {
			tied = append(tied, child)
			continue
		}

		top := tied[0]
		switch {
		case child.plays > top.plays,
			child.plays == top.plays && child.wins > top.wins:
			tied = append(tied[:0], child)
		case child.plays == top.plays && child.wins == top.wins:
			tied = append(tied, child)
		}
	}

	switch len(tied) {
	case 0:
		return nil
	case 1:
		return tied[0]
	}
	return tied[m.random.Intn(len(tied))]
}

// Results snapshots the root for diagnostics and UIs.
func (m *MCTS[S, T]) Results() SearchResult[T] {
	result := SearchResult[T]{
		Simulations: m.root.plays,
		Confidence:  math.NaN(),
		Children:    make([]ChildStat[T], len(m.root.Children)),
	}
	for i, child := range m.root.Children {
		result.Children[i] = ChildStat[T]{Move: child.Move, Plays: child.plays, Wins: child.wins}
	}

	if best := m.bestChild(); best != nil {
		result.BestMove = best.Move
		if best.plays > 0 {
			result.Confidence = float64(best.wins) / float64(best.plays)
		}
	}
	return result
}
