package engine

import (
	"testing"

	"github.com/arcanox/chesscore/internal/board"
)

// TestScoreMoveCapture checks the capture term: captureMultiplier times the
// victim's material minus the mover's own material.
func TestScoreMoveCapture(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/8/8/8/3p4/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseMove("d1d3", g)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Kind().IsCapture() {
		t.Fatalf("d1d3 should be a capture, got kind %v", m.Kind())
	}

	want := captureMultiplier*board.PieceValue[board.Pawn] - board.PieceValue[board.Rook]
	if got := scoreMove(g, m); got != want {
		t.Errorf("scoreMove(rook takes pawn) = %d, want %d", got, want)
	}
}

// TestScoreMovePromotion checks the flat promotion bonus plus the promoted
// piece's material, with no capture or castle term mixed in.
func TestScoreMovePromotion(t *testing.T) {
	g, err := board.ParseFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseMove("a7a8q", g)
	if err != nil {
		t.Fatal(err)
	}

	want := promotionBonus + board.PieceValue[board.Queen]
	if got := scoreMove(g, m); got != want {
		t.Errorf("scoreMove(a7a8q) = %d, want %d", got, want)
	}
}

// TestScoreMoveCastle checks the flat castle bonus in isolation.
func TestScoreMoveCastle(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseMove("e1g1", g)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Kind().IsCastle() {
		t.Fatalf("e1g1 should be a castle, got kind %v", m.Kind())
	}

	if got := scoreMove(g, m); got != castleBonus {
		t.Errorf("scoreMove(castle) = %d, want %d", got, castleBonus)
	}
}

// TestScoreMoveAttackedDestinationPenalty checks that moving a quiet move
// onto a square already attacked by the enemy is penalized, relative to an
// otherwise identical move onto a safe square.
func TestScoreMoveAttackedDestinationPenalty(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/4r3/8/8/8/8/3R2K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	safe, err := board.ParseMove("d1d4", g)
	if err != nil {
		t.Fatal(err)
	}
	attacked, err := board.ParseMove("d1d6", g)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Analysis(g.SideToMove).EnemyAttacks.IsSet(attacked.To()) {
		t.Fatalf("test fixture expects d6 to be attacked by the e6 rook")
	}
	if g.Analysis(g.SideToMove).EnemyAttacks.IsSet(safe.To()) {
		t.Fatalf("test fixture expects d4 to be safe")
	}

	if got, other := scoreMove(g, attacked), scoreMove(g, safe); got >= other {
		t.Errorf("scoreMove(onto attacked square) = %d, want less than safe move's %d", got, other)
	}
}

// TestOrderMovesSortsDescending checks that orderMoves leaves the highest-
// scoring move first, using a position with one obvious best capture among
// several quiet moves.
func TestOrderMovesSortsDescending(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/8/8/3q4/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var moves board.MoveList
	board.GenerateLegalMoves(g, &moves)
	orderMoves(g, &moves)

	best := moves.Get(0)
	bestScore := scoreMove(g, best)
	for i := 1; i < moves.Len(); i++ {
		if s := scoreMove(g, moves.Get(i)); s > bestScore {
			t.Fatalf("move at index %d scores %d, higher than the first move's %d", i, s, bestScore)
		}
	}

	wantCapture, err := board.ParseMove("d1d4", g)
	if err != nil {
		t.Fatal(err)
	}
	if best != wantCapture {
		t.Errorf("orderMoves put %s first, want the rook takes queen capture %s", best, wantCapture)
	}
}
