package bench

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JJ-Kira/iReversi/pkg/mcts"
)

// Same subtraction game the engine tests use: take 1 or 2 tokens, taking the
// last one wins. No draws, tiny trees, fast games.
type nimState struct {
	tokens int
	turn   mcts.Color
}

func (s nimState) Equal(other nimState) bool { return s == other }

func (s nimState) Progress() int { return -s.tokens }

func (s nimState) Status() mcts.Status {
	if s.tokens == 0 {
		return mcts.Status{Terminal: true, Winner: s.turn.Other()}
	}
	return mcts.Status{ToMove: s.turn}
}

func (s nimState) LegalMoves(c mcts.Color) []int {
	if c != s.turn || s.tokens == 0 {
		return nil
	}
	if s.tokens >= 2 {
		return []int{1, 2}
	}
	return []int{1}
}

func (s nimState) Apply(move int, c mcts.Color) nimState {
	if c != s.turn || move < 1 || move > 2 || move > s.tokens {
		panic(fmt.Sprintf("nim: illegal move %d for %v", move, c))
	}
	return nimState{tokens: s.tokens - move, turn: s.turn.Other()}
}

func nimFactory(cycles uint32) EngineFactory[nimState, int] {
	return func(state nimState, color mcts.Color) *mcts.MCTS[nimState, int] {
		m := mcts.NewMCTS(state, color).SetRollouts(2)
		m.SetLimits(mcts.DefaultLimits().SetCycles(cycles))
		return m
	}
}

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})

	os.Exit(m.Run())
}

func TestArenaPlaysAllGames(t *testing.T) {
	arena := NewArena(nimState{tokens: 9, turn: mcts.ColorBlack}, nimFactory(32), nimFactory(32))
	arena.NGames = 7
	arena.NWorkers = 3

	arena.Run()

	require.Equal(t, 7, arena.Total())
	require.Zero(t, arena.Draws(), "the subtraction game has no draws")
}

func TestArenaCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewArena(nimState{tokens: 9, turn: mcts.ColorBlack}, nimFactory(32), nimFactory(32)).
		WithContext(ctx)
	arena.NGames = 100

	arena.Run()

	require.Zero(t, arena.Total(), "a cancelled arena abandons its games")
}
