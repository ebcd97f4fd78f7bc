package mcts

import (
	"encoding/json"
	"math"
	"strings"
)

// Limits is the external search budget. Budgets are only checked between
// iterations: a running iteration always completes its whole rollout batch.
type Limits struct {
	Movetime int    // milliseconds, -1 for no time limit
	Cycles   uint32 // number of search iterations
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultMovetimeLimit int    = -1
	DefaultCyclesLimit   uint32 = math.MaxUint32
)

func DefaultLimits() *Limits {
	return &Limits{
		Movetime: DefaultMovetimeLimit,
		Cycles:   DefaultCyclesLimit,
		Infinite: true,
	}
}

// Set the maximum time for the engine to think
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Set the number of select/expand/rollout/backpropagate cycles
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
