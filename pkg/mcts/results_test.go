package mcts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBestActionMostVisits(t *testing.T) {
	m := newNimMCTS(8, 1)
	root := m.Root()
	rare := newNode(root, root.State.Apply(1, ColorBlack), 1)
	popular := newNode(root, root.State.Apply(2, ColorBlack), 2)
	rare.plays, rare.wins = 5, 5
	popular.plays, popular.wins = 20, 8
	root.Children = append(root.Children, rare, popular)

	require.Equal(t, 2, m.BestAction(), "most visited child wins regardless of win rate")
}

func TestBestActionTieBreaksByWins(t *testing.T) {
	m := newNimMCTS(8, 1)
	root := m.Root()
	worse := newNode(root, root.State.Apply(1, ColorBlack), 1)
	better := newNode(root, root.State.Apply(2, ColorBlack), 2)
	worse.plays, worse.wins = 10, 3
	better.plays, better.wins = 10, 7
	root.Children = append(root.Children, worse, better)

	for i := 0; i < 5; i++ {
		require.Equal(t, 2, m.BestAction(), "equal plays must deterministically fall back to wins")
	}
}

func TestBestActionResidualTieIsRandomAmongTied(t *testing.T) {
	m := newNimMCTS(8, 1)
	root := m.Root()
	one := newNode(root, root.State.Apply(1, ColorBlack), 1)
	two := newNode(root, root.State.Apply(2, ColorBlack), 2)
	one.plays, one.wins = 10, 5
	two.plays, two.wins = 10, 5
	root.Children = append(root.Children, one, two)

	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		move := m.BestAction()
		require.Contains(t, []int{1, 2}, move)
		seen[move] = true
	}
	require.Len(t, seen, 2, "both tied children should be picked eventually")
}

func TestBestActionNoChildren(t *testing.T) {
	m := newNimMCTS(8, 1)

	require.Zero(t, m.BestAction(), "no children degenerates to the no-move sentinel")
}

func TestResultsSnapshot(t *testing.T) {
	m := newNimMCTS(8, 2)

	result := m.Results()
	require.Zero(t, result.Simulations)
	require.True(t, math.IsNaN(result.Confidence), "confidence is NaN before the first play")
	require.Empty(t, result.Children)

	for i := 0; i < 10; i++ {
		m.IterateSearch()
	}
	result = m.Results()

	require.Equal(t, m.Root().Plays(), result.Simulations)
	require.Len(t, result.Children, len(m.Root().Children))
	require.Contains(t, []int{1, 2}, result.BestMove)
	require.GreaterOrEqual(t, result.Confidence, 0.0)
	require.LessOrEqual(t, result.Confidence, 1.0)

	var plays int32
	for _, child := range result.Children {
		require.LessOrEqual(t, child.Wins, child.Plays)
		plays += child.Plays
	}
	require.Equal(t, result.Simulations, plays, "root plays must equal the sum over its children")
}
