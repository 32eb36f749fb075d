package engine

import "github.com/arcanox/chesscore/internal/board"

// Move-ordering heuristic weights.
const (
	captureMultiplier = 10
	promotionBonus    = 25
	castleBonus       = 50
	attackedPenalty   = 200
)

// scoreMove returns the move-ordering score for m in g, before it is made:
// captures score by material swing, promotions and castling get a flat
// bonus, and moving onto a square the enemy already attacks is penalized.
// Higher scores are searched first.
func scoreMove(g *board.Game, m board.Move) int {
	score := 0
	kind := m.Kind()

	mover := g.Board.PieceAt(m.From())

	if kind.IsCapture() {
		capturedSq := m.To()
		if kind == board.EnPassantCapture {
			if g.SideToMove == board.White {
				capturedSq = board.Square(int(m.To()) - 8)
			} else {
				capturedSq = board.Square(int(m.To()) + 8)
			}
		}
		if victim := g.Board.PieceAt(capturedSq); victim != nil {
			score += captureMultiplier*victim.Value() - mover.Value()
		}
	}

	if promoted, ok := kind.PromotedKind(); ok {
		score += promotionBonus + board.PieceValue[promoted]
	}

	if kind.IsCastle() {
		score += castleBonus
	}

	if g.Analysis(g.SideToMove).EnemyAttacks.IsSet(m.To()) {
		score -= attackedPenalty
	}

	return score
}

// orderMoves sorts list in place by descending scoreMove, highest first —
// a selection sort is plenty for the handful of dozens of moves a chess
// position ever produces.
func orderMoves(g *board.Game, list *board.MoveList) {
	n := list.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = scoreMove(g, list.Get(i))
	}
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			list.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}
