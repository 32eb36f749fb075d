// Package engine implements the static evaluator and alpha-beta search
// that sit on top of internal/board.
package engine

import "github.com/arcanox/chesscore/internal/board"

// Piece-Square Tables (PST) for positional evaluation. Values are from
// White's perspective (rank 0 = the first rank in the array); Black
// consults the same table with the square mirrored.
//
// Pawn PST - encourages central control and advancement.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Knight PST - encourages central positioning.
var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

// Bishop PST - encourages central diagonals.
var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// Rook PST - encourages 7th rank and open files.
var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

// Queen PST - slight central preference.
var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// King PST (middlegame) - encourages staying behind a pawn shield.
var kingMidgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var psts = [6][64]int{
	board.Pawn:   pawnPST,
	board.Knight: knightPST,
	board.Bishop: bishopPST,
	board.Rook:   rookPST,
	board.Queen:  queenPST,
	board.King:   kingMidgamePST,
}

// checkPenalty is subtracted from a side's total while it is in check.
const checkPenalty = 100

// pstIndex returns the table index for sq from color's own perspective:
// White reads the table directly, Black mirrors the rank.
func pstIndex(sq board.Square, color board.Color) board.Square {
	if color == board.White {
		return sq
	}
	return sq.Mirror()
}

// Evaluate returns the static score of g from the side-to-move's
// perspective, in centipawns, positive meaning better for the side to
// move. It is `friendly_total - enemy_total`, where each side's total
// is material plus piece-square bonus, minus the material of any own
// piece standing on a square the opponent attacks, minus a flat
// penalty while that side is in check.
func Evaluate(g *board.Game) int {
	white := colorTotal(g, board.White)
	black := colorTotal(g, board.Black)

	score := white - black
	if g.SideToMove == board.Black {
		score = -score
	}
	return score
}

func colorTotal(g *board.Game, color board.Color) int {
	total := 0
	enemyAttacks := g.Analysis(color).EnemyAttacks

	for sq := board.Square(0); sq < 64; sq++ {
		p := g.Board.PieceAt(sq)
		if p == nil || p.Color != color {
			continue
		}

		total += p.Value()
		total += psts[p.Kind][pstIndex(sq, color)]

		if enemyAttacks.IsSet(sq) {
			total -= p.Value()
		}
	}

	if g.InCheck(color) {
		total -= checkPenalty
	}

	return total
}
