package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind represents the kind of a chess piece, independent of color.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = 6
)

// String returns the piece kind name.
func (pk PieceKind) String() string {
	switch pk {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (pk PieceKind) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pk > NoPieceKind {
		return ' '
	}
	return chars[pk]
}

// PieceValue is the material value of each piece kind in centipawns.
var PieceValue = [6]int{100, 300, 300, 500, 900, 10000}

// Piece is the (color, kind) pair occupying a square. The mailbox board
// stores *Piece per square; a nil pointer means the square is empty — the
// square itself isn't carried on the piece, since its home is implicit in
// which mailbox slot holds it.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// String returns the FEN character for the piece: uppercase for white,
// lowercase for black.
func (p Piece) String() string {
	c := p.Kind.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece. ok is false for any
// character that isn't one of PNBRQKpnbrqk.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return Piece{White, Pawn}, true
	case 'N':
		return Piece{White, Knight}, true
	case 'B':
		return Piece{White, Bishop}, true
	case 'R':
		return Piece{White, Rook}, true
	case 'Q':
		return Piece{White, Queen}, true
	case 'K':
		return Piece{White, King}, true
	case 'p':
		return Piece{Black, Pawn}, true
	case 'n':
		return Piece{Black, Knight}, true
	case 'b':
		return Piece{Black, Bishop}, true
	case 'r':
		return Piece{Black, Rook}, true
	case 'q':
		return Piece{Black, Queen}, true
	case 'k':
		return Piece{Black, King}, true
	default:
		return Piece{}, false
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Kind]
}
