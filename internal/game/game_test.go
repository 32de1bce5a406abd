package game

import (
	"errors"
	"testing"
)

func newTestGame(t *testing.T, pieces map[string]Piece, turn Player) *Game {
	t.Helper()
	b := NewBoard()
	placeAll(t, b, pieces)
	return &Game{board: b, turn: turn, state: StateUnfinished}
}

func TestNewGame(t *testing.T) {
	g := New()

	if g.GameState() != StateUnfinished {
		t.Errorf("state = %v, expected %v", g.GameState(), StateUnfinished)
	}
	if g.Turn() != Tangerine {
		t.Errorf("turn = %v, expected Tangerine to move first", g.Turn())
	}
	if g.MoveCount() != 0 {
		t.Errorf("move count = %d, expected 0", g.MoveCount())
	}
	if pc := g.Board().PieceAt(mustSquare(t, "d1")); pc == nil || pc.Type != Cuttlefish {
		t.Error("expected the Tangerine cuttlefish on d1")
	}
}

func TestWombatJumpFourSquares(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"c1": {Type: Wombat, Owner: Tangerine},
		"d7": {Type: Cuttlefish, Owner: Amethyst},
	}, Tangerine)

	if !g.MakeMove("c1", "c5") {
		t.Fatal("expected c1->c5 to succeed")
	}
	if g.Board().PieceAt(mustSquare(t, "c1")) != nil {
		t.Error("c1 should be empty after the jump")
	}
	if pc := g.Board().PieceAt(mustSquare(t, "c5")); pc == nil || pc.Type != Wombat {
		t.Error("expected the wombat on c5")
	}
	if g.Turn() != Amethyst {
		t.Errorf("turn = %v, expected Amethyst after a successful move", g.Turn())
	}
}

func TestWombatJumpIgnoresMidpointBlocker(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"c1": {Type: Wombat, Owner: Tangerine},
		"c3": {Type: Emu, Owner: Amethyst},
	}, Tangerine)

	if !g.MakeMove("c1", "c5") {
		t.Fatal("expected the jump over c3 to succeed")
	}
	pc := g.Board().PieceAt(mustSquare(t, "c3"))
	if pc == nil || pc.Owner != Amethyst || pc.Type != Emu {
		t.Error("the piece jumped over must be unaffected")
	}
}

func TestEmuCannotExceedMaxDistance(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"e1": {Type: Emu, Owner: Tangerine},
	}, Tangerine)
	before := g.Render()

	if g.MakeMove("e1", "e5") {
		t.Fatal("expected e1->e5 to be rejected, distance exceeds 3")
	}
	if g.Render() != before {
		t.Error("rejected move mutated the board")
	}
	if g.Turn() != Tangerine {
		t.Error("rejected move flipped the turn")
	}
}

func TestChinchillaCaptures(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"b2": {Type: Chinchilla, Owner: Tangerine},
		"c3": {Type: Wombat, Owner: Amethyst},
	}, Tangerine)

	result, err := g.Apply("b2", "c3")
	if err != nil {
		t.Fatalf("expected the capture to succeed, got %v", err)
	}
	if !result.Capture {
		t.Error("result should report a capture")
	}
	if result.Captured == nil || result.Captured.Type != Wombat || result.Captured.Owner != Amethyst {
		t.Errorf("captured = %+v, expected the Amethyst wombat", result.Captured)
	}
	pc := g.Board().PieceAt(mustSquare(t, "c3"))
	if pc == nil || pc.Type != Chinchilla || pc.Owner != Tangerine {
		t.Error("expected the Tangerine chinchilla on c3")
	}
}

func TestRejectedMoveLeavesStateUntouched(t *testing.T) {
	g := New()
	before := g.Render()

	rejected := [][2]string{
		{"c1", "c5"}, // emu past its range
		{"c3", "c4"}, // empty origin
		{"c7", "c6"}, // opponent's piece
		{"b1", "b3"}, // wombat partial jump
		{"a1", "a1"}, // same square
		{"a1", "h9"}, // off the board
		{"x", "c4"},  // malformed notation
	}

	for _, mv := range rejected {
		if g.MakeMove(mv[0], mv[1]) {
			t.Errorf("expected %s->%s to be rejected", mv[0], mv[1])
		}
		if g.Render() != before {
			t.Fatalf("%s->%s mutated the board despite rejection", mv[0], mv[1])
		}
		if g.Turn() != Tangerine {
			t.Fatalf("%s->%s flipped the turn despite rejection", mv[0], mv[1])
		}
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()

	moves := [][2]string{
		{"c1", "c4"}, // Tangerine emu
		{"e7", "e4"}, // Amethyst emu
		{"b1", "b5"}, // Tangerine wombat
		{"f7", "f3"}, // Amethyst wombat
	}
	expectedTurns := []Player{Amethyst, Tangerine, Amethyst, Tangerine}

	for i, mv := range moves {
		if !g.MakeMove(mv[0], mv[1]) {
			t.Fatalf("move %d (%s->%s) unexpectedly rejected", i, mv[0], mv[1])
		}
		if g.Turn() != expectedTurns[i] {
			t.Fatalf("after move %d, turn = %v, expected %v", i, g.Turn(), expectedTurns[i])
		}
	}
	if g.MoveCount() != len(moves) {
		t.Errorf("move count = %d, expected %d", g.MoveCount(), len(moves))
	}
}

func TestCuttlefishCaptureWinsImmediately(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"c6": {Type: Emu, Owner: Tangerine},
		"c7": {Type: Cuttlefish, Owner: Amethyst},
		"d1": {Type: Cuttlefish, Owner: Tangerine},
	}, Tangerine)

	result, err := g.Apply("c6", "c7")
	if err != nil {
		t.Fatalf("expected the winning capture to succeed, got %v", err)
	}
	if !result.GameOver || result.State != StateTangerineWon {
		t.Errorf("result = %+v, expected a Tangerine win", result)
	}
	if g.GameState() != StateTangerineWon {
		t.Errorf("state = %v, expected %v", g.GameState(), StateTangerineWon)
	}
	// The turn does not pass once the game is over.
	if g.Turn() != Tangerine {
		t.Errorf("turn = %v, expected the winner to retain the turn", g.Turn())
	}
}

func TestNoMovesAfterGameOver(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"c6": {Type: Emu, Owner: Tangerine},
		"c7": {Type: Cuttlefish, Owner: Amethyst},
		"d2": {Type: Emu, Owner: Amethyst},
		"d1": {Type: Cuttlefish, Owner: Tangerine},
	}, Tangerine)

	if !g.MakeMove("c6", "c7") {
		t.Fatal("winning capture rejected")
	}

	attempts := [][2]string{
		{"d2", "d1"}, // would otherwise capture the other cuttlefish
		{"c7", "c6"},
		{"d2", "d3"},
	}
	for _, mv := range attempts {
		_, err := g.Apply(mv[0], mv[1])
		if err == nil {
			t.Fatalf("expected %s->%s to be rejected after game end", mv[0], mv[1])
		}
		if !errors.Is(err, ErrGameOver) {
			t.Errorf("%s->%s rejection = %v, expected ErrGameOver", mv[0], mv[1], err)
		}
	}
	if g.GameState() != StateTangerineWon {
		t.Error("a finished game must never change state")
	}
}

func TestCapturingNonCuttlefishDoesNotEndGame(t *testing.T) {
	g := newTestGame(t, map[string]Piece{
		"b2": {Type: Chinchilla, Owner: Tangerine},
		"c3": {Type: Emu, Owner: Amethyst},
		"d7": {Type: Cuttlefish, Owner: Amethyst},
		"d1": {Type: Cuttlefish, Owner: Tangerine},
	}, Tangerine)

	result, err := g.Apply("b2", "c3")
	if err != nil {
		t.Fatalf("capture rejected: %v", err)
	}
	if result.GameOver || result.State != StateUnfinished {
		t.Errorf("result = %+v, expected the game to continue", result)
	}
	if g.Turn() != Amethyst {
		t.Error("turn should pass after a non-terminal capture")
	}
}
