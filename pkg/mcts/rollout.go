package mcts

import (
	"fmt"
	"math/rand"
	"sync"
)

// runRollouts fans one iteration out into the configured number of
// concurrent rollouts, all starting from the same state. Each goroutine owns
// a distinct slot of the results slice and its own seeded generator, so the
// only synchronization is the final join; the call blocks until every
// rollout has finished.
func (m *MCTS[S, T]) runRollouts(state S) []int32 {
	outcomes := make([]int32, m.rollouts)

	var wg sync.WaitGroup
	wg.Add(len(outcomes))
	for i := range outcomes {
		seed := m.random.Int63()
		go func(slot int, seed int64) {
			defer wg.Done()
			outcomes[slot] = simulate(state, m.color, rand.New(rand.NewSource(seed)))
		}(i, seed)
	}
	wg.Wait()

	return outcomes
}

// simulate plays uniformly random moves from state until the game ends and
// returns 1 for a win of color, 0 for a loss or a tie. It touches no tree
// state, only the state value it was given.
func simulate[S GameState[S, T], T comparable](state S, color Color, random *rand.Rand) int32 {
	status := state.Status()
	for !status.Terminal {
		moves := state.LegalMoves(status.ToMove)
		if len(moves) == 0 {
			panic(fmt.Sprintf("mcts: non-terminal state reported no legal moves for %v", status.ToMove))
		}
		state = state.Apply(moves[random.Intn(len(moves))], status.ToMove)
		status = state.Status()
	}

	if status.Winner == color {
		return 1
	}
	return 0
}

// backpropagate folds one iteration's rollout batch into every node on the
// path from node to the root: plays grows by the fan-out, wins by the summed
// outcomes.
func backpropagate[S GameState[S, T], T comparable](node *Node[S, T], plays, wins int32) {
	for n := node; n != nil; n = n.Parent {
		n.plays += plays
		n.wins += wins
	}
}

// markClosed sweeps from node towards the root marking subtrees in which
// every line ends in a terminal state. A node stays open while it has an
// untried move or an open child, and an open node keeps all its ancestors
// open, so the sweep stops at the first one.
func markClosed[S GameState[S, T], T comparable](node *Node[S, T]) {
	for n := node; n != nil; n = n.Parent {
		if n.closed {
			continue
		}
		if !n.fullyExpanded {
			return
		}
		for _, child := range n.Children {
			if !child.closed {
				return
			}
		}
		n.closed = true
	}
}
