package board

import "fmt"

// MoveKind tags exactly what a Move does. It's the single source of truth
// make/unmake and the evaluator consult — they never re-derive "was this a
// capture" from board state, since the board has already been mutated (or
// not yet restored) by the time they ask.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	KingCastle
	QueenCastle
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightPromotionCapture
	BishopPromotionCapture
	RookPromotionCapture
	QueenPromotionCapture
)

// IsCapture reports whether this kind removes an enemy piece (captures
// proper and en-passant captures; promotion-captures included).
func (k MoveKind) IsCapture() bool {
	switch k {
	case Capture, EnPassantCapture, KnightPromotionCapture, BishopPromotionCapture,
		RookPromotionCapture, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether this kind promotes the moving pawn.
func (k MoveKind) IsPromotion() bool {
	switch k {
	case KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion,
		KnightPromotionCapture, BishopPromotionCapture, RookPromotionCapture, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// IsCastle reports whether this kind is a castling move.
func (k MoveKind) IsCastle() bool {
	return k == KingCastle || k == QueenCastle
}

// PromotedKind returns the piece kind a promotion move becomes. The second
// return value is false for a non-promotion kind.
func (k MoveKind) PromotedKind() (PieceKind, bool) {
	switch k {
	case KnightPromotion, KnightPromotionCapture:
		return Knight, true
	case BishopPromotion, BishopPromotionCapture:
		return Bishop, true
	case RookPromotion, RookPromotionCapture:
		return Rook, true
	case QueenPromotion, QueenPromotionCapture:
		return Queen, true
	default:
		return NoPieceKind, false
	}
}

// Move packs origin square, destination square and move kind into 16 bits:
// bits 0-5 from, bits 6-11 to, bits 12-15 kind. The kind alone (not a
// recomputation from board state) drives make/unmake and move ordering.
type Move uint16

// NoMove is the null/invalid move.
const NoMove Move = 0xFFFF

// NewMove packs a move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the move kind tag.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 12) & 0xF)
}

// String renders long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pk, ok := m.Kind().PromotedKind(); ok {
		s += string(pk.Char())
	}
	return s
}

var promoCharKind = map[byte]PieceKind{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// promotionKind maps a promoted piece kind (and whether the move is also a
// capture) to its MoveKind tag.
func promotionKind(pk PieceKind, capture bool) MoveKind {
	switch pk {
	case Knight:
		if capture {
			return KnightPromotionCapture
		}
		return KnightPromotion
	case Bishop:
		if capture {
			return BishopPromotionCapture
		}
		return BishopPromotion
	case Rook:
		if capture {
			return RookPromotionCapture
		}
		return RookPromotion
	default:
		if capture {
			return QueenPromotionCapture
		}
		return QueenPromotion
	}
}

// ParseMove parses a long-algebraic move string against a game to recover
// the MoveKind tag (which the wire format itself doesn't carry), returning
// an error wrapping ErrIllegalMove if it doesn't name a legal move.
func ParseMove(s string, g *Game) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("board: malformed move %q: %w", s, ErrIllegalMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("board: malformed move %q: %w", s, ErrIllegalMove)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("board: malformed move %q: %w", s, ErrIllegalMove)
	}
	var wantPromo (PieceKind)
	havePromo := false
	if len(s) == 5 {
		pk, ok := promoCharKind[s[4]]
		if !ok {
			return NoMove, fmt.Errorf("board: invalid promotion piece %q: %w", s[4:], ErrIllegalMove)
		}
		wantPromo = pk
		havePromo = true
	}

	var legal MoveList
	GenerateLegalMoves(g, &legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promoted, isPromo := m.Kind().PromotedKind(); isPromo {
			if !havePromo || promoted != wantPromo {
				continue
			}
		} else if havePromo {
			continue
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("board: %s is not legal in this position: %w", s, ErrIllegalMove)
}

// MoveList is a fixed-capacity list of moves, sized for the worst-case
// branching factor of a chess position, to avoid per-call allocation in
// the hot move-generation path.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}
