package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the position record for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a position record (FEN) and returns the Game it
// describes.
func ParseFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: need at least 4 FEN fields, got %d: %w", len(parts), ErrInvalidFEN)
	}

	g := &Game{
		FullMoveNumber: 1,
	}
	g.KingSquare[White] = NoSquare
	g.KingSquare[Black] = NoSquare
	g.State.EnPassant = NoSquare

	if err := parsePiecePlacement(g, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		g.SideToMove = White
	case "b":
		g.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	if err := parseCastlingRights(g, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square %q: %w", parts[3], ErrInvalidFEN)
		}
		g.State.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid half-move clock %q: %w", parts[4], ErrInvalidFEN)
		}
		g.State.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid full-move number %q: %w", parts[5], ErrInvalidFEN)
		}
		g.FullMoveNumber = fmn
	}

	if g.KingSquare[White] == NoSquare || g.KingSquare[Black] == NoSquare {
		return nil, fmt.Errorf("board: position is missing a king: %w", ErrInvalidFEN)
	}

	g.refreshAnalysis()
	return g, nil
}

func parsePiecePlacement(g *Game, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: need 8 ranks in piece placement, got %d: %w", len(ranks), ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d: %w", rank+1, ErrInvalidFEN)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := PieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("board: invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			sq := NewSquare(file, rank)
			g.Board.place(sq, &piece)
			if piece.Kind == King {
				g.KingSquare[piece.Color] = sq
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("board: rank %d has %d squares, want 8: %w", rank+1, file, ErrInvalidFEN)
		}
	}

	return nil
}

func parseCastlingRights(g *Game, castling string) error {
	if castling == "-" {
		g.State.CastlingRights = NoCastling
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			g.State.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			g.State.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			g.State.CastlingRights |= BlackKingSideCastle
		case 'q':
			g.State.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("board: invalid castling character %q: %w", c, ErrInvalidFEN)
		}
	}
	return nil
}

// FEN serializes g back into position-record form.
func (g *Game) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.Board.PieceAt(NewSquare(file, rank))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if g.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(g.State.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(g.State.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.State.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.FullMoveNumber))

	return sb.String()
}
