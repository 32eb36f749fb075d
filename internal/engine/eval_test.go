package engine

import (
	"testing"

	"github.com/arcanox/chesscore/internal/board"
)

// TestEvaluateSymmetricPositionIsBalanced checks that a position with
// exactly mirrored material and piece-square placement for both colors —
// the starting position is the clearest example — evaluates to exactly
// zero regardless of whose move it notionally is.
func TestEvaluateSymmetricPositionIsBalanced(t *testing.T) {
	g := board.NewGame()
	if score := Evaluate(g); score != 0 {
		t.Errorf("Evaluate(start position) = %d, want 0 (perfectly mirrored material and placement)", score)
	}
}

// TestEvaluateFavorsMaterial checks that having an extra queen dominates
// the score, regardless of piece-square noise.
func TestEvaluateFavorsMaterial(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if g.Material() <= 0 {
		t.Fatalf("test fixture should have white up material, g.Material() = %d", g.Material())
	}
	if Evaluate(g) <= 0 {
		t.Errorf("Evaluate() = %d, want a large positive score for white up a queen", Evaluate(g))
	}
}

// TestEvaluatePenalizesCheck checks the flat in-check penalty: with no
// material imbalance, the side to move scores negatively while it is in
// check (the white rook checks the black king, and black is on the move).
func TestEvaluatePenalizesCheck(t *testing.T) {
	inCheck, err := board.ParseFEN("R3k3/8/8/8/8/8/7r/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !inCheck.InCheck(board.Black) {
		t.Fatal("test fixture should have black in check")
	}
	if score := Evaluate(inCheck); score >= 0 {
		t.Errorf("side to move in check should score negatively, got %d", score)
	}
}
