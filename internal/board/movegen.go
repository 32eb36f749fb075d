package board

// GenerateLegalMoves fills list with every fully legal move available to
// the side to move in g. It consults the cached AttackInfo for the side to
// move rather than making each candidate move and checking whether the
// king survives — pins restrict destinations to the pin ray, checks
// restrict destinations to the check ray, and king moves are filtered
// against the enemy-attack bitboard directly.
func GenerateLegalMoves(g *Game, list *MoveList) {
	us := g.SideToMove
	info := g.Analysis(us)
	inCheck := info.CheckRay != Empty

	for sq := Square(0); sq < 64; sq++ {
		p := g.Board.PieceAt(sq)
		if p == nil || p.Color != us {
			continue
		}
		switch p.Kind {
		case Pawn:
			generatePawnMoves(g, sq, p, info, inCheck, list)
		case King:
			generateKingMoves(g, sq, info, list)
		default:
			generateSlidingOrKnightMoves(g, sq, p, info, inCheck, list)
		}
	}
}

// generateSlidingOrKnightMoves handles knight, bishop, rook and queen
// moves via the shared pseudo-move enumerator.
func generateSlidingOrKnightMoves(g *Game, from Square, p *Piece, info *AttackInfo, inCheck bool, list *MoveList) {
	pinRay := info.PinRay[from]
	pinned := pinRay != Empty

	EnumeratePseudoMoves(p.Color, p.Kind, from, func(to Square, _ bool) bool {
		occ := g.Board.PieceAt(to)
		if occ != nil && occ.Color == p.Color {
			return false
		}
		legal := true
		if pinned && !pinRay.IsSet(to) {
			legal = false
		}
		if inCheck && !info.CheckRay.IsSet(to) {
			legal = false
		}
		if legal {
			kind := Quiet
			if occ != nil {
				kind = Capture
			}
			list.Add(NewMove(from, to, kind))
		}
		return occ == nil
	})
}

// generatePawnMoves handles pushes, double pushes, diagonal captures, en
// passant and promotion. Pawns are special-cased directly (not through
// the shared enumerator) because their move legality depends on occupancy
// in a way the enumerator's uniform callback signature can't express: a
// forward square must be empty, a diagonal must hold an enemy piece (or
// be the en-passant target).
func generatePawnMoves(g *Game, from Square, p *Piece, info *AttackInfo, inCheck bool, list *MoveList) {
	us := p.Color
	pinRay := info.PinRay[from]
	pinned := pinRay != Empty

	change := 8
	promoRank := 7
	if us == Black {
		change = -8
		promoRank = 0
	}

	destinationResolves := func(to, extra Square) bool {
		if pinned && !pinRay.IsSet(to) {
			return false
		}
		if !inCheck {
			return true
		}
		if info.CheckRay.IsSet(to) {
			return true
		}
		return extra != NoSquare && info.CheckRay.IsSet(extra)
	}

	addMove := func(to Square, kind MoveKind) {
		if to.Rank() == promoRank && kind != DoublePawnPush {
			capture := kind.IsCapture()
			list.Add(NewMove(from, to, promotionKind(Knight, capture)))
			list.Add(NewMove(from, to, promotionKind(Bishop, capture)))
			list.Add(NewMove(from, to, promotionKind(Rook, capture)))
			list.Add(NewMove(from, to, promotionKind(Queen, capture)))
			return
		}
		list.Add(NewMove(from, to, kind))
	}

	// Single and double forward push.
	oneStep := Square(int(from) + change)
	if g.Board.IsEmpty(oneStep) {
		if destinationResolves(oneStep, NoSquare) {
			addMove(oneStep, Quiet)
		}
		startRank := 1
		if us == Black {
			startRank = 6
		}
		if from.Rank() == startRank {
			twoStep := Square(int(from) + change*2)
			if g.Board.IsEmpty(twoStep) && destinationResolves(twoStep, NoSquare) {
				addMove(twoStep, DoublePawnPush)
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, to := range pawnAttackTargets(us, from) {
		if to == g.State.EnPassant && to != NoSquare {
			capturedSq := Square(int(to) - change)
			if destinationResolves(to, capturedSq) && enPassantSafe(g, from, capturedSq, us) {
				addMove(to, EnPassantCapture)
			}
			continue
		}
		occ := g.Board.PieceAt(to)
		if occ != nil && occ.Color != us {
			if destinationResolves(to, NoSquare) {
				addMove(to, Capture)
			}
		}
	}
}

// enPassantSafe implements the special rank-pin rule for en passant: an
// en-passant capture that would expose the king along the capturing
// pawn's rank (because removing both the capturing and captured pawn in
// the same instant uncovers a rook or queen) is illegal even though
// neither pawn looks pinned on its own. Verified by walking the king's
// rank through both pawns' squares (ignoring them) and rejecting if an
// enemy rook or queen is the first piece reached.
func enPassantSafe(g *Game, from, capturedSq Square, us Color) bool {
	kingSq := g.KingSquare[us]
	if kingSq.Rank() != from.Rank() {
		return true
	}
	dir := dirEast
	if capturedSq.File() < kingSq.File() {
		dir = dirWest
	}

	cur := kingSq
	steps := edgeDistance[kingSq][dir]
	for j := uint8(0); j < steps; j++ {
		cur = Square(int(cur) + DirectionOffsets[dir])
		if cur == from || cur == capturedSq {
			continue
		}
		occ := g.Board.PieceAt(cur)
		if occ == nil {
			continue
		}
		if occ.Color != us && (occ.Kind == Rook || occ.Kind == Queen) {
			return false
		}
		return true
	}
	return true
}

// generateKingMoves handles the eight adjacent squares and the two
// castle-candidate squares the enumerator always offers on the home rank.
func generateKingMoves(g *Game, from Square, info *AttackInfo, list *MoveList) {
	us := g.SideToMove

	EnumeratePseudoMoves(us, King, from, func(to Square, _ bool) bool {
		if to.Rank() == from.Rank() && abs(to.File()-from.File()) == 2 {
			generateCastle(g, from, to, info, list)
			return true
		}
		occ := g.Board.PieceAt(to)
		if occ != nil && occ.Color == us {
			return true
		}
		if info.EnemyAttacks.IsSet(to) {
			return true
		}
		kind := Quiet
		if occ != nil {
			kind = Capture
		}
		list.Add(NewMove(from, to, kind))
		return true
	})
}

func generateCastle(g *Game, from, to Square, info *AttackInfo, list *MoveList) {
	us := g.SideToMove
	rank := from.Rank()
	kingSide := to.File() == 6

	if !g.State.CastlingRights.CanCastle(us, kingSide) {
		return
	}

	var betweenSquares []Square
	var passSquares []Square
	if kingSide {
		betweenSquares = []Square{NewSquare(5, rank), NewSquare(6, rank)}
		passSquares = []Square{NewSquare(4, rank), NewSquare(5, rank), NewSquare(6, rank)}
	} else {
		betweenSquares = []Square{NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)}
		passSquares = []Square{NewSquare(4, rank), NewSquare(3, rank), NewSquare(2, rank)}
	}

	for _, sq := range betweenSquares {
		if !g.Board.IsEmpty(sq) {
			return
		}
	}
	for _, sq := range passSquares {
		if info.EnemyAttacks.IsSet(sq) {
			return
		}
	}

	kind := QueenCastle
	if kingSide {
		kind = KingCastle
	}
	list.Add(NewMove(from, to, kind))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without materializing the full list.
func HasLegalMoves(g *Game) bool {
	var list MoveList
	GenerateLegalMoves(g, &list)
	return list.Len() > 0
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(g *Game) bool {
	return g.InCheck(g.SideToMove) && !HasLegalMoves(g)
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func IsStalemate(g *Game) bool {
	return !g.InCheck(g.SideToMove) && !HasLegalMoves(g)
}
