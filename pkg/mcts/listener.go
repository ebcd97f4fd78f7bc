package mcts

// SearchStats is the snapshot handed to listener callbacks.
type SearchStats[T comparable] struct {
	Cycles      uint32
	TimeMs      uint32
	Cps         uint32
	Simulations int32
	BestMove    T
	Confidence  float64
	StopReason  StopReason
}

// Listener function callback, receives the current tree statistics
type ListenerFunc[T comparable] func(SearchStats[T])

// StatsListener delivers live statistics while Search runs. Callbacks are
// invoked between iterations on the searching goroutine, so they need no
// synchronization of their own.
type StatsListener[T comparable] struct {
	// called every N full iterations
	onCycle ListenerFunc[T]
	nCycles int

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc[T]
}

func NewStatsListener[T comparable]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

// Attach new on iteration callback, called every N cycles (SetCycleInterval
// to set N); small intervals slow the search down, use for debugging
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, called once, makes 'StopReason' available
// in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}

func (m *MCTS[S, T]) SetListener(listener StatsListener[T]) {
	*m.listener = listener
}

func (m *MCTS[S, T]) StatsListener() *StatsListener[T] {
	return m.listener
}

func (m *MCTS[S, T]) stats() SearchStats[T] {
	result := m.Results()
	return SearchStats[T]{
		Cycles:      m.cycles,
		TimeMs:      m.Limiter.Elapsed(),
		Cps:         m.Cps(),
		Simulations: result.Simulations,
		BestMove:    result.BestMove,
		Confidence:  result.Confidence,
		StopReason:  m.Limiter.StopReason(),
	}
}

func (m *MCTS[S, T]) invokeCycle() {
	if m.listener.onCycle != nil && m.cycles%uint32(m.listener.nCycles) == 0 {
		m.listener.onCycle(m.stats())
	}
}

func (m *MCTS[S, T]) invokeStop() {
	if m.listener.onStop != nil {
		m.listener.onStop(m.stats())
	}
}
