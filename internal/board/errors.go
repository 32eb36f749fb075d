package board

import "errors"

// ErrIllegalMove is wrapped by any error returned when a caller asks to
// apply a move that isn't in the current legal move list.
var ErrIllegalMove = errors.New("illegal move")

// ErrInvalidFEN is wrapped by any error returned when a position record
// fails to parse.
var ErrInvalidFEN = errors.New("invalid FEN")
