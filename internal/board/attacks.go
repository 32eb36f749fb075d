package board

// AttackInfo is what the analyzer produces for one defending color after a
// position is fixed: which squares the opponent attacks, which of the
// defender's own pieces are pinned (and along which ray), and which
// squares resolve a check, if any. It is always recomputed from scratch
// after a make/unmake rather than updated incrementally.
type AttackInfo struct {
	// EnemyAttacks is the set of squares attacked by the color opposite
	// the defender.
	EnemyAttacks Bitboard

	// PinRay[sq], when non-empty, is the ray (inclusive of the pinning
	// piece's square, exclusive of the king's square) that a defender
	// piece on sq is confined to, because moving off it would expose the
	// king to a slider.
	PinRay [64]Bitboard

	// CheckRay is the union of squares that would resolve every checker
	// currently attacking the defender's king (its own square, for a
	// non-sliding attacker; the ray from a sliding attacker's own square up
	// to but not including the king, for a slider). Empty means "not in
	// check".
	CheckRay Bitboard
}

// pawnAttackTargets returns the (up to two) diagonal squares a pawn of the
// given color on sq attacks, regardless of what (if anything) occupies
// them.
func pawnAttackTargets(color Color, sq Square) []Square {
	change := 8
	if color == Black {
		change = -8
	}
	targets := make([]Square, 0, 2)
	if sq.File() != 0 {
		targets = append(targets, Square(int(sq)+change-1))
	}
	if sq.File() != 7 {
		targets = append(targets, Square(int(sq)+change+1))
	}
	return targets
}

// analyze computes the full AttackInfo for "defender" against the current
// board. It is the single implementation behind both move-legality
// filtering and the evaluator's "is this square attacked" query.
func analyze(b *Board, defender Color, kingSq Square) AttackInfo {
	attacker := defender.Other()
	var info AttackInfo

	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == nil || p.Color != attacker {
			continue
		}

		switch p.Kind {
		case Pawn:
			for _, t := range pawnAttackTargets(attacker, sq) {
				info.EnemyAttacks = info.EnemyAttacks.Set(t)
			}
		case Knight, King:
			EnumeratePseudoMoves(p.Color, p.Kind, sq, func(t Square, _ bool) bool {
				if p.Kind == King && abs(t.File()-sq.File()) == 2 {
					// Castle-candidate squares are not attacked by the king.
					return true
				}
				info.EnemyAttacks = info.EnemyAttacks.Set(t)
				return true
			})
		case Bishop, Rook, Queen:
			passedKing := false
			EnumeratePseudoMoves(p.Color, p.Kind, sq, func(t Square, _ bool) bool {
				info.EnemyAttacks = info.EnemyAttacks.Set(t)
				if passedKing {
					return false
				}
				occ := b.PieceAt(t)
				if occ != nil {
					if t == kingSq {
						// A ray through the defending king continues one
						// square past it, so the king can't step
						// backwards along the attacker's ray.
						passedKing = true
						return true
					}
					return false
				}
				return true
			})
		}
	}

	computeRays(b, defender, attacker, kingSq, &info)
	return info
}

// computeRays walks every enemy slider's attack directions toward the
// defending king to classify each ray as a check, a pin, or neither, and
// separately folds in non-sliding (pawn/knight) checkers, which contribute
// only their own square.
func computeRays(b *Board, defender, attacker Color, kingSq Square, info *AttackInfo) {
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == nil || p.Color != attacker {
			continue
		}

		switch p.Kind {
		case Rook:
			walkRaysToKing(b, defender, sq, dirNorth, dirEast+1, kingSq, info)
		case Bishop:
			walkRaysToKing(b, defender, sq, dirNorthWest, dirSouthWest+1, kingSq, info)
		case Queen:
			walkRaysToKing(b, defender, sq, dirNorth, dirSouthWest+1, kingSq, info)
		case Pawn:
			for _, t := range pawnAttackTargets(attacker, sq) {
				if t == kingSq {
					info.CheckRay = info.CheckRay.Set(sq)
				}
			}
		case Knight:
			EnumeratePseudoMoves(attacker, Knight, sq, func(t Square, _ bool) bool {
				if t == kingSq {
					info.CheckRay = info.CheckRay.Set(sq)
				}
				return true
			})
		}
	}
}

// walkRaysToKing walks slider directions [startDir,endDir) from sq,
// classifying the ray as a check (0 friendly defenders between slider and
// king), a pin (exactly 1), or neither (2+, or the ray never reaches the
// king).
func walkRaysToKing(b *Board, defender Color, sliderSq Square, startDir, endDir int, kingSq Square, info *AttackInfo) {
	for d := startDir; d < endDir; d++ {
		ray := Empty.Set(sliderSq)
		friendlyBetween := 0
		pinnedSq := NoSquare
		cur := sliderSq
		steps := edgeDistance[sliderSq][d]

		for j := uint8(0); j < steps; j++ {
			cur = Square(int(cur) + DirectionOffsets[d])
			ray = ray.Set(cur)

			if cur == kingSq {
				rayExcludingKing := ray.Clear(kingSq)
				switch friendlyBetween {
				case 0:
					info.CheckRay |= rayExcludingKing
				case 1:
					info.PinRay[pinnedSq] |= rayExcludingKing
				}
				break
			}

			occ := b.PieceAt(cur)
			if occ == nil {
				continue
			}
			if occ.Color == defender {
				friendlyBetween++
				pinnedSq = cur
				if friendlyBetween > 2 {
					break
				}
				continue
			}
			// An attacker-side piece blocks the ray before the king.
			break
		}
	}
}
