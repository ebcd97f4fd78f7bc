package mcts

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            // stopped by SetStop or context cancellation
	StopMovetime             // time budget exhausted
	StopCycles               // cycle budget exhausted
	StopExhausted            // the tree is fully expanded and terminal-closed
)

func (sr StopReason) String() string {
	switch sr {
	case StopInterrupt:
		return "Interrupt"
	case StopMovetime:
		return "Movetime"
	case StopCycles:
		return "Cycles"
	case StopExhausted:
		return "Exhausted"
	}
	return "None"
}

// Limiter enforces the search budget between iterations.
type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithCancel(context.Background())
//
//	tree.Limiter.SetContext(ctx)
//	go func() {
//	    time.Sleep(2 * time.Second)
//	    cancel() // Cancel the search after 2 seconds
//	}()
//
//	tree.Search()
func (l *Limiter) SetContext(ctx context.Context) {
	if ctx != nil {
		l.ctx = ctx
	}
}

// Set the stop signal, true makes the search loop exit before the next iteration
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Get the stop signal
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	if limits != nil {
		l.limits = limits
	}
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Get elapsed time in ms (from the last 'Reset' call), never zero
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}

// Ok reports whether another iteration fits in the budget.
func (l *Limiter) Ok(cycles uint32) bool {
	if l.Stop() {
		return false
	}
	if l.limits.Infinite {
		return true
	}
	return !l.timer.IsEnd() && cycles < l.limits.Cycles
}

// EvaluateStopReason records why the search loop exited, called once after it
// does. The exhausted flag wins over the budget reasons: a closed tree stops
// the loop no matter what budget remains.
func (l *Limiter) EvaluateStopReason(cycles uint32, exhausted bool) {
	switch {
	case exhausted:
		l.reason = StopExhausted
	case l.stop.Load():
		l.reason = StopInterrupt
	case l.timer.IsEnd():
		l.reason = StopMovetime
	case !l.limits.Infinite && cycles >= l.limits.Cycles:
		l.reason = StopCycles
	default:
		l.reason = StopNone
	}
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
