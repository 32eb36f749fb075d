package board

import "fmt"

// CastlingRights is a bitmask of the four castling privileges still on the
// table — it records that a king or rook hasn't moved, not that castling
// is currently playable (squares might be occupied or attacked).
type CastlingRights uint8

const (
	WhiteKingSideCastle CastlingRights = 1 << iota
	WhiteQueenSideCastle
	BlackKingSideCastle
	BlackQueenSideCastle
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling-rights field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle reports whether the given side still holds the right to
// castle in the given direction (not whether it's currently legal).
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return cr&WhiteKingSideCastle != 0
	case c == White && !kingSide:
		return cr&WhiteQueenSideCastle != 0
	case c == Black && kingSide:
		return cr&BlackKingSideCastle != 0
	default:
		return cr&BlackQueenSideCastle != 0
	}
}

// castleRightsMask clears the castling rights lost when a piece leaves (or
// a rook is captured on) a given square — a king or rook move, or an enemy
// capturing a rook on its home square, are the only ways rights are lost.
func castleRightsMask(sq Square) CastlingRights {
	switch sq {
	case E1:
		return WhiteKingSideCastle | WhiteQueenSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case E8:
		return BlackKingSideCastle | BlackQueenSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return NoCastling
	}
}

// Board is the 64-square mailbox: a direct array from square to the piece
// occupying it, nil for empty. Unlike a bitboard-per-piece representation,
// "what's on e4" is an O(1) array read rather than a scan over piece sets.
type Board struct {
	squares [64]*Piece
}

// PieceAt returns the piece on sq, or nil if the square is empty.
func (b *Board) PieceAt(sq Square) *Piece {
	return b.squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == nil
}

// place puts p on sq, overwriting whatever was there.
func (b *Board) place(sq Square, p *Piece) {
	b.squares[sq] = p
}

// remove empties sq and returns what was there (nil if already empty).
func (b *Board) remove(sq Square) *Piece {
	p := b.squares[sq]
	b.squares[sq] = nil
	return p
}

// relocate moves whatever occupies "from" to "to", emptying "from". It
// overwrites anything on "to" — callers that need the captured piece must
// read it before calling relocate.
func (b *Board) relocate(from, to Square) {
	b.squares[to] = b.squares[from]
	b.squares[from] = nil
}

// GameState is the minimal snapshot make/unmake pushes and pops per ply:
// just the facts a move could have changed that aren't otherwise
// recoverable by reversing the move itself (the from/to squares and kind
// are in the Move that accompanies it, and the moved piece stands on the
// destination square).
type GameState struct {
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Captured       PieceKind
	HasCaptured    bool
}

// Game owns the full position: the board, whose move it is, cached king
// squares, the current state snapshot, parallel stacks of prior snapshots
// and moves (so UnmakeMove can restore exactly what MakeMove changed), and
// the attack/pin/check analysis for both colors, recomputed fresh after
// every make/unmake rather than updated incrementally.
type Game struct {
	Board          Board
	SideToMove     Color
	KingSquare     [2]Square
	State          GameState
	FullMoveNumber int

	stateStack []GameState
	moveStack  []Move

	info [2]AttackInfo // info[White] = analysis defending White's king, etc.
}

// NewGame returns the standard starting position.
func NewGame() *Game {
	g, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: starting FEN failed to parse: " + err.Error())
	}
	return g
}

// refreshAnalysis recomputes the attack/pin/check picture for both
// defenders. Called once after setup and after every make/unmake.
func (g *Game) refreshAnalysis() {
	g.info[White] = analyze(&g.Board, White, g.KingSquare[White])
	g.info[Black] = analyze(&g.Board, Black, g.KingSquare[Black])
}

// Analysis returns the cached attack/pin/check info defending c's king.
func (g *Game) Analysis(c Color) *AttackInfo {
	return &g.info[c]
}

// InCheck reports whether c's king is currently attacked.
func (g *Game) InCheck(c Color) bool {
	return g.info[c].CheckRay != Empty
}

// MakeMove applies a pseudo-legal move produced by the move generator.
// Callers should only ever pass moves returned by GenerateLegalMoves (or
// ParseMove, which consults it); MakeMove trusts the move's Kind tag and
// does not re-derive it from board state.
func (g *Game) MakeMove(m Move) {
	from, to, kind := m.From(), m.To(), m.Kind()
	mover := g.Board.PieceAt(from)
	if mover == nil || mover.Color != g.SideToMove {
		panic("board: MakeMove from a square without a piece of the side to move")
	}

	next := GameState{
		CastlingRights: g.State.CastlingRights,
		EnPassant:      NoSquare,
		HalfMoveClock:  g.State.HalfMoveClock + 1,
	}

	if kind.IsCapture() {
		var capturedSq Square
		if kind == EnPassantCapture {
			if g.SideToMove == White {
				capturedSq = Square(int(to) - 8)
			} else {
				capturedSq = Square(int(to) + 8)
			}
		} else {
			capturedSq = to
		}
		captured := g.Board.remove(capturedSq)
		next.Captured = captured.Kind
		next.HasCaptured = true
		next.CastlingRights &^= castleRightsMask(capturedSq)
	}

	if mover.Kind == Pawn || kind.IsCapture() {
		next.HalfMoveClock = 0
	}

	g.Board.relocate(from, to)

	if promoted, ok := kind.PromotedKind(); ok {
		g.Board.place(to, &Piece{Color: mover.Color, Kind: promoted})
	}

	switch kind {
	case DoublePawnPush:
		if g.SideToMove == White {
			next.EnPassant = Square(int(from) + 8)
		} else {
			next.EnPassant = Square(int(from) - 8)
		}
	case KingCastle:
		rank := from.Rank()
		g.Board.relocate(NewSquare(7, rank), NewSquare(5, rank))
	case QueenCastle:
		rank := from.Rank()
		g.Board.relocate(NewSquare(0, rank), NewSquare(3, rank))
	}

	next.CastlingRights &^= castleRightsMask(from)
	next.CastlingRights &^= castleRightsMask(to)

	if mover.Kind == King {
		g.KingSquare[mover.Color] = to
	}

	g.stateStack = append(g.stateStack, g.State)
	g.moveStack = append(g.moveStack, m)
	g.State = next

	if g.SideToMove == Black {
		g.FullMoveNumber++
	}
	g.SideToMove = g.SideToMove.Other()

	g.refreshAnalysis()
}

// UnmakeMove reverses the most recent MakeMove. It panics if called with
// an empty stack — that's a programmer error (UnmakeUnderflow), not a
// recoverable one.
func (g *Game) UnmakeMove() {
	n := len(g.moveStack)
	if n == 0 {
		panic("board: UnmakeMove called with no moves on the stack")
	}
	m := g.moveStack[n-1]
	prev := g.stateStack[n-1]
	g.moveStack = g.moveStack[:n-1]
	g.stateStack = g.stateStack[:n-1]

	g.SideToMove = g.SideToMove.Other()
	if g.SideToMove == Black {
		g.FullMoveNumber--
	}

	from, to, kind := m.From(), m.To(), m.Kind()
	mover := g.Board.PieceAt(to)

	if promoted, ok := kind.PromotedKind(); ok {
		_ = promoted
		g.Board.place(to, &Piece{Color: mover.Color, Kind: Pawn})
		mover = g.Board.PieceAt(to)
	}

	g.Board.relocate(to, from)

	switch kind {
	case KingCastle:
		rank := from.Rank()
		g.Board.relocate(NewSquare(5, rank), NewSquare(7, rank))
	case QueenCastle:
		rank := from.Rank()
		g.Board.relocate(NewSquare(3, rank), NewSquare(0, rank))
	}

	if kind.IsCapture() && g.State.HasCaptured {
		var capturedSq Square
		if kind == EnPassantCapture {
			if g.SideToMove == White {
				capturedSq = Square(int(to) - 8)
			} else {
				capturedSq = Square(int(to) + 8)
			}
		} else {
			capturedSq = to
		}
		g.Board.place(capturedSq, &Piece{Color: g.SideToMove.Other(), Kind: g.State.Captured})
	}

	if mover.Kind == King {
		g.KingSquare[mover.Color] = from
	}

	g.State = prev
	g.refreshAnalysis()
}

// String returns a human-readable ASCII dump of the position, for debug
// logging.
func (g *Game) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := g.Board.PieceAt(NewSquare(file, rank))
			if p == nil {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", g.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", g.State.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", g.State.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", g.State.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", g.FullMoveNumber)
	return s
}

// Material returns White material minus Black material, in centipawns.
func (g *Game) Material() int {
	score := 0
	for sq := Square(0); sq < 64; sq++ {
		p := g.Board.PieceAt(sq)
		if p == nil {
			continue
		}
		if p.Color == White {
			score += p.Value()
		} else {
			score -= p.Value()
		}
	}
	return score
}
