package game

import (
	"errors"
	"fmt"
)

// State of a game. Monotonic: once won it never reverts.
type State string

const (
	StateUnfinished   State = "UNFINISHED"
	StateTangerineWon State = "TANGERINE_WON"
	StateAmethystWon  State = "AMETHYST_WON"
)

var ErrGameOver = errors.New("game is over")

// MoveResult describes an executed move.
type MoveResult struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Player   Player   `json:"player"`
	Kind     MoveKind `json:"kind"`
	Capture  bool     `json:"capture"`
	Captured *Piece   `json:"captured,omitempty"`
	GameOver bool     `json:"gameOver"`
	State    State    `json:"state"`
}

// Game owns a board, the turn and the game state, and orchestrates
// validate, execute and win detection for each move request. It is not safe
// for concurrent use; callers sharing an instance must serialize MakeMove.
type Game struct {
	board     *Board
	turn      Player
	state     State
	moveCount int
}

// New returns a game at the fixed starting layout with Tangerine to move.
func New() *Game {
	return &Game{
		board: NewStartingBoard(),
		turn:  Tangerine,
		state: StateUnfinished,
	}
}

// MakeMove attempts the move described by two algebraic squares. It returns
// false for any invalid request (malformed notation, finished game, or a
// rejected move) and in that case leaves all state untouched.
func (g *Game) MakeMove(from, to string) bool {
	_, err := g.Apply(from, to)
	return err == nil
}

// Apply is MakeMove with diagnostics: on rejection it returns the reason and
// mutates nothing, on success it returns what happened.
func (g *Game) Apply(from, to string) (*MoveResult, error) {
	if g.state != StateUnfinished {
		return nil, ErrGameOver
	}

	fromSq, err := ParseSquare(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	kind, err := ValidateMove(g.board, g.turn, fromSq, toSq)
	if err != nil {
		return nil, err
	}

	captured := g.board.PieceAt(toSq)
	g.board.Move(fromSq, toSq)
	g.moveCount++

	result := &MoveResult{
		From:    fromSq.String(),
		To:      toSq.String(),
		Player:  g.turn,
		Kind:    kind,
		Capture: captured != nil,
	}
	if captured != nil {
		pc := *captured
		result.Captured = &pc

		// Capturing the Cuttlefish ends the game immediately.
		if captured.Type == Cuttlefish {
			if g.turn == Tangerine {
				g.state = StateTangerineWon
			} else {
				g.state = StateAmethystWon
			}
		}
	}

	if g.state == StateUnfinished {
		g.turn = g.turn.Opponent()
	}

	result.State = g.state
	result.GameOver = g.state != StateUnfinished
	return result, nil
}

// GameState returns the current state.
func (g *Game) GameState() State {
	return g.state
}

// Turn returns the player to move. Meaningless once the game is over.
func (g *Game) Turn() Player {
	return g.turn
}

// MoveCount returns the number of executed moves.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// Board exposes the underlying board for inspection and rendering. Mutating
// it directly bypasses validation.
func (g *Game) Board() *Board {
	return g.board
}

// Render returns the text diagram of the current position.
func (g *Game) Render() string {
	return g.board.Render()
}
