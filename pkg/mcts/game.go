package mcts

// Color identifies one of the two players.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorWhite
)

// Other returns the opposing color, ColorNone maps to itself.
func (c Color) Other() Color {
	switch c {
	case ColorBlack:
		return ColorWhite
	case ColorWhite:
		return ColorBlack
	}
	return ColorNone
}

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	}
	return "none"
}

// Status is the answer to the turn-or-terminal query on a game state.
type Status struct {
	// Terminal is true once the game is decided.
	Terminal bool

	// ToMove is the color to play next, valid only while !Terminal.
	ToMove Color

	// Winner is the winning color of a finished game, ColorNone on a tie.
	// Valid only when Terminal.
	Winner Color
}

// GameState is the capability set the tree consumes: an immutable,
// value-comparable snapshot of a game position. S is the implementing type
// itself, T its move type. Apply must return a new state and leave the
// receiver untouched, so a state value can be handed to concurrent rollouts
// without any locking.
//
// The zero value of T is reserved as the "no move" sentinel, used only for
// the root of the tree. Implementations must never report it as a legal move.
type GameState[S any, T comparable] interface {
	// Equal reports whether two states are the same position with the same
	// side to move (or the same terminal outcome). It must be decidable from
	// the state values alone.
	Equal(S) bool

	// Progress is a measure that never decreases along any transition, e.g.
	// the number of pieces placed. It bounds the depth-first search when the
	// tree is re-rooted: a subtree whose progress already exceeds the
	// target's cannot contain it.
	Progress() int

	Status() Status

	// LegalMoves must be non-empty whenever c is to move.
	LegalMoves(c Color) []T

	// Apply plays move for c and returns the resulting state.
	Apply(move T, c Color) S
}
