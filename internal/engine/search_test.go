package engine

import (
	"testing"

	"github.com/arcanox/chesscore/internal/board"
)

// TestSearchFindsMateInOne checks mate detection directly: after the rook
// delivers mate on the back rank, black has no legal moves and is in
// check, so search from that leaf must return -MateScore + ply.
func TestSearchFindsMateInOne(t *testing.T) {
	g, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseMove("e1e8", g)
	if err != nil {
		t.Fatal(err)
	}
	g.MakeMove(m)

	if !g.InCheck(board.Black) {
		t.Fatal("black should be in check after Re8")
	}
	var moves board.MoveList
	board.GenerateLegalMoves(g, &moves)
	if moves.Len() != 0 {
		t.Fatalf("black should have no legal moves, got %d", moves.Len())
	}

	s := NewSearcher(g, DefaultSettings())
	_, score := s.Start()
	if want := -MateScore; score != want {
		t.Errorf("search() at the mated leaf = %d, want %d", score, want)
	}
}

// TestSearchFindsMateInOneFromRoot checks that searching one ply earlier
// finds Re8 itself and reports it as a forced mate.
func TestSearchFindsMateInOneFromRoot(t *testing.T) {
	g, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearcher(g, DefaultSettings())
	best, score := s.Start()

	want, err := board.ParseMove("e1e8", g)
	if err != nil {
		t.Fatal(err)
	}
	if best != want {
		t.Errorf("Start() best move = %s, want %s", best, want)
	}
	if score <= MateScore-100 {
		t.Errorf("Start() score = %d, want a near-mate score reflecting forced mate in one", score)
	}
}

// TestSearchTakesFreeQueen checks ordinary material-seeking behavior: given
// a hanging queen, the search should take it.
func TestSearchTakesFreeQueen(t *testing.T) {
	g, err := board.ParseFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	best := BestMove(g)
	want, err := board.ParseMove("d1d5", g)
	if err != nil {
		t.Fatal(err)
	}
	if best != want {
		t.Errorf("BestMove() = %s, want the rook takes queen move %s", best, want)
	}
}

// TestSearchReturnsNoMoveOnStalemate checks that a side with no legal moves
// and not in check evaluates to a draw score of 0, with no move to report.
func TestSearchReturnsNoMoveOnStalemate(t *testing.T) {
	g, err := board.ParseFEN("k7/8/KQ6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var moves board.MoveList
	board.GenerateLegalMoves(g, &moves)
	if moves.Len() != 0 {
		t.Fatalf("test fixture should be stalemate, got %d legal moves", moves.Len())
	}

	s := NewSearcher(g, DefaultSettings())
	move, score := s.Start()
	if move != board.NoMove {
		t.Errorf("Start() move = %s, want NoMove on stalemate", move)
	}
	if score != 0 {
		t.Errorf("Start() score = %d, want 0 on stalemate", score)
	}
}
