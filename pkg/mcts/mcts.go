package mcts

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/rs/zerolog/log"
)

// MCTS is a Monte Carlo tree search engine for a finite, deterministic,
// perfect-information, two-player game. It builds the tree one node per
// iteration, fans every iteration out into parallel rollouts (leaf
// parallelization) and folds their outcomes back along the selected path.
//
// Outcomes are always scored for the fixed color passed to NewMCTS, the side
// this engine plays. Iterations are serial: running two IterateSearch calls
// concurrently on the same tree is unsupported.
type MCTS[S GameState[S, T], T comparable] struct {
	// Limiter enforces the external search budget used by Search.
	Limiter *Limiter

	root        *Node[S, T]
	color       Color
	rollouts    int
	exploration float64
	random      *rand.Rand
	listener    *StatsListener[T]
	size        uint32
	cycles      uint32
}

// NewMCTS creates a single-node tree rooted at state, optimizing outcomes
// for color. The rollout fan-out defaults to the number of CPUs.
func NewMCTS[S GameState[S, T], T comparable](state S, color Color) *MCTS[S, T] {
	if color != ColorBlack && color != ColorWhite {
		panic(fmt.Sprintf("mcts: cannot optimize for %v", color))
	}

	return &MCTS[S, T]{
		Limiter:     NewLimiter(),
		root:        newRootNode[S, T](state),
		color:       color,
		rollouts:    runtime.NumCPU(),
		exploration: DefaultExploration,
		random:      rand.New(rand.NewSource(SeedGeneratorFn())),
		listener:    &StatsListener[T]{nCycles: 1},
		size:        1,
	}
}

// SetRollouts sets the rollout fan-out per iteration, clamped to at least 1.
func (m *MCTS[S, T]) SetRollouts(k int) *MCTS[S, T] {
	m.rollouts = max(1, k)
	return m
}

// SetExploration sets the exploration constant of the UCB1 rule.
func (m *MCTS[S, T]) SetExploration(c float64) *MCTS[S, T] {
	m.exploration = max(0, c)
	return m
}

// SetRand replaces the engine's source of randomness, used for choosing the
// move to expand, tie-breaking the final decision and seeding rollouts.
func (m *MCTS[S, T]) SetRand(random *rand.Rand) *MCTS[S, T] {
	if random != nil {
		m.random = random
	}
	return m
}

func (m *MCTS[S, T]) SetLimits(limits *Limits) *MCTS[S, T] {
	m.Limiter.SetLimits(limits)
	return m
}

func (m *MCTS[S, T]) Color() Color { return m.color }

func (m *MCTS[S, T]) Rollouts() int { return m.rollouts }

func (m *MCTS[S, T]) Root() *Node[S, T] { return m.root }

// Size is the number of nodes in the tree.
func (m *MCTS[S, T]) Size() uint32 { return m.size }

// Cycles is the number of iterations ran by the last (or current) Search.
func (m *MCTS[S, T]) Cycles() uint32 { return m.cycles }

// Cps is the cycles per second statistic of the last Search.
func (m *MCTS[S, T]) Cps() uint32 {
	return m.cycles * 1000 / m.Limiter.Elapsed()
}

// IterateSearch runs one select/expand/rollout/backpropagate unit of work.
// It adds at most one node to the tree, blocks until every rollout of the
// fan-out has finished, and is a no-op once the tree is terminal-closed.
func (m *MCTS[S, T]) IterateSearch() {
	if m.root.closed {
		return
	}

	node := m.selectNode()
	outcomes := m.runRollouts(node.State)

	var wins int32
	for _, outcome := range outcomes {
		wins += outcome
	}
	backpropagate(node, int32(len(outcomes)), wins)
	markClosed(node)

	m.cycles++
}

// HasUnsimulatedPlays reports whether the tree still has positions left to
// sample.
func (m *MCTS[S, T]) HasUnsimulatedPlays() bool {
	return !m.root.closed
}

// UpdateStartingState re-roots the tree at the externally advanced game
// state. A visited node matching state is promoted to root, keeping its
// subtree statistics; everything outside that subtree is discarded. When no
// visited match exists the whole tree is replaced by a fresh single-node one.
// Called with a state equal to the current root's it does nothing.
func (m *MCTS[S, T]) UpdateStartingState(state S) {
	if m.root.State.Equal(state) {
		return
	}

	if match := findState(m.root, state); match != nil && match.plays > 0 {
		var noMove T
		match.Parent = nil
		match.Move = noMove
		m.root = match
		m.size = uint32(countTreeNodes(match))
		log.Debug().
			Int32("plays", match.plays).
			Uint32("size", m.size).
			Msg("mcts: reusing subtree as new root")
		return
	}

	log.Debug().Msg("mcts: no reusable subtree, starting fresh")
	m.root = newRootNode[S, T](state)
	m.size = 1
}

// Search drives IterateSearch until the Limiter budget runs out or the tree
// is terminal-closed, then records the stop reason. Blocks until done.
func (m *MCTS[S, T]) Search() {
	m.Limiter.Reset()
	m.cycles = 0

	for m.Limiter.Ok(m.cycles) && !m.root.closed {
		m.IterateSearch()
		m.invokeCycle()
	}

	m.Limiter.EvaluateStopReason(m.cycles, m.root.closed)
	log.Debug().
		Uint32("cycles", m.cycles).
		Uint32("size", m.size).
		Stringer("reason", m.Limiter.StopReason()).
		Msg("mcts: search stopped")
	m.invokeStop()
}

func (m *MCTS[S, T]) String() string {
	return fmt.Sprintf("MCTS{Color: %v, Size: %d, Cycles: %d, Root: plays=%d wins=%d children=%d}",
		m.color, m.size, m.cycles, m.root.plays, m.root.wins, len(m.root.Children))
}
