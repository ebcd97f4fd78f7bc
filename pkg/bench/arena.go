package bench

/*
Arena benchmark subpackage, plays a series of games between two different
engine configurations over the same game. Every real move is pushed into both
trees through UpdateStartingState, so each engine keeps (and reuses) the
subtree it already searched.
*/

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/JJ-Kira/iReversi/pkg/mcts"
)

type MatchResult int

const (
	MatchPl1Win MatchResult = 1
	MatchPl2Win MatchResult = -1
	MatchDraw   MatchResult = 0
)

// EngineFactory builds a fresh engine for one game, rooted at state and
// optimizing for color. Limits and knobs are the factory's business.
type EngineFactory[S mcts.GameState[S, T], T comparable] func(state S, color mcts.Color) *mcts.MCTS[S, T]

type ArenaStats struct {
	p1Wins uint32
	p2Wins uint32
	draws  uint32
}

func (as *ArenaStats) Total() int {
	return as.P1Wins() + as.P2Wins() + as.Draws()
}

func (as *ArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&as.p1Wins))
}

func (as *ArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&as.p2Wins))
}

func (as *ArenaStats) Draws() int {
	return int(atomic.LoadUint32(&as.draws))
}

type Arena[S mcts.GameState[S, T], T comparable] struct {
	ArenaStats
	Player1  EngineFactory[S, T]
	Player2  EngineFactory[S, T]
	NGames   uint
	NWorkers uint
	Start    S
	wg       sync.WaitGroup
	ctx      context.Context
}

func NewArena[S mcts.GameState[S, T], T comparable](start S, player1, player2 EngineFactory[S, T]) *Arena[S, T] {
	return &Arena[S, T]{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		Start:    start,
		ctx:      context.Background(),
	}
}

func (a *Arena[S, T]) WithContext(ctx context.Context) *Arena[S, T] {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Run plays NGames games equally distributed over NWorkers workers and
// blocks until every game has finished. Each game randomly swaps which
// configuration plays black, so a first-move advantage cancels out over a
// large enough batch.
func (a *Arena[S, T]) Run() {
	nGames := a.NGames / a.NWorkers
	rest := a.NGames % a.NWorkers

	for id := uint(0); id < a.NWorkers; id++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		a.wg.Add(1)
		go a.worker(int(id), int(nGames+delta))
	}
	a.wg.Wait()
}

func (a *Arena[S, T]) worker(id, nGames int) {
	defer a.wg.Done()
	random := rand.New(rand.NewSource(mcts.SeedGeneratorFn() + int64(id)))

	for i := 0; i < nGames; i++ {
		select {
		case <-a.ctx.Done():
			return
		default:
		}

		black, white := a.Player1, a.Player2
		switched := random.Intn(2) == 1
		if switched {
			black, white = white, black
		}

		result := a.playGame(black, white)
		if switched {
			result = -result
		}

		switch result {
		case MatchPl1Win:
			atomic.AddUint32(&a.p1Wins, 1)
		case MatchPl2Win:
			atomic.AddUint32(&a.p2Wins, 1)
		default:
			atomic.AddUint32(&a.draws, 1)
		}

		log.Debug().
			Int("worker", id).
			Int("game", i+1).
			Int("result", int(result)).
			Msg("bench: game finished")
	}
}

// playGame runs one game with pl1 as black, returning the result from pl1's
// perspective. A cancelled context scores the unfinished game as a draw.
func (a *Arena[S, T]) playGame(pl1, pl2 EngineFactory[S, T]) MatchResult {
	state := a.Start
	black := pl1(state, mcts.ColorBlack)
	white := pl2(state, mcts.ColorWhite)

	for {
		status := state.Status()
		if status.Terminal {
			switch status.Winner {
			case mcts.ColorBlack:
				return MatchPl1Win
			case mcts.ColorWhite:
				return MatchPl2Win
			}
			return MatchDraw
		}

		select {
		case <-a.ctx.Done():
			return MatchDraw
		default:
		}

		mover := black
		if status.ToMove == mcts.ColorWhite {
			mover = white
		}

		mover.Search()
		state = state.Apply(mover.BestAction(), status.ToMove)

		// Both trees follow the real game.
		black.UpdateStartingState(state)
		white.UpdateStartingState(state)
	}
}
