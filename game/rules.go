package game

// IsLegalOrigin reports whether from holds a piece of the side to move.
func (b *Board) IsLegalOrigin(from Square) bool {
	return b.cells[from] != Empty && b.cells[from].Side() == b.turn
}

// IsLegalMove reports whether from-to is a legal move for the side to move.
// Whether the game is already decided is not considered here.
func (b *Board) IsLegalMove(from, to Square) bool {
	return b.rejection(b.turn, from, to) == nil
}

// IsLegal reports whether mv is a legal move for the side to move.
func (b *Board) IsLegal(mv Move) bool {
	return b.IsLegalMove(mv.From, mv.To)
}

// Check returns the *MoveError Apply would return for mv, or nil if Apply
// would accept it.
func (b *Board) Check(mv Move) error {
	if b.winner != NoSide {
		return &MoveError{Move: mv, Err: ErrGameOver}
	}
	if reason := b.rejection(b.turn, mv.From, mv.To); reason != nil {
		return &MoveError{Move: mv, Err: ErrIllegalMove, Reason: reason}
	}
	return nil
}

// rejection returns the reason side may not play from-to, or nil.
func (b *Board) rejection(side Side, from, to Square) error {
	if !validSquare(from) || !validSquare(to) {
		return ErrNotRookMove
	}
	p := b.cells[from]
	if p == Empty || p.Side() != side {
		return ErrNotYourPiece
	}
	if !from.IsRookMove(to) {
		return ErrNotRookMove
	}
	if !b.isUnblocked(from, to) {
		return ErrPathBlocked
	}
	if to == Throne && p != King {
		return ErrThroneEntered
	}
	return nil
}

func validSquare(sq Square) bool {
	return sq >= 0 && int(sq) < NumSquares
}

// isUnblocked reports whether every square after from up to and including
// to is empty. from and to must share a row or column.
func (b *Board) isUnblocked(from, to Square) bool {
	step := 1
	if from.Row() != to.Row() {
		step = Size
	}
	if to < from {
		step = -step
	}
	for sq := int(from) + step; ; sq += step {
		if b.cells[sq] != Empty {
			return false
		}
		if sq == int(to) {
			return true
		}
	}
}

// LegalMoves returns every legal move for side, ignoring whose turn it is.
// Origins are visited in square order and destinations ray by ray
// (north, east, south, west), nearest first.
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	b.eachMove(side, func(mv Move) bool {
		moves = append(moves, mv)
		return true
	})
	return moves
}

// HasMove reports whether side has any legal move.
func (b *Board) HasMove(side Side) bool {
	found := false
	b.eachMove(side, func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachMove calls yield for each legal move of side until yield returns false.
func (b *Board) eachMove(side Side, yield func(Move) bool) {
	for i, p := range b.cells {
		if p == Empty || p.Side() != side {
			continue
		}
		from := Square(i)
		for dir := North; dir <= West; dir++ {
			for dist := 1; ; dist++ {
				to, ok := from.RookMove(dir, dist)
				if !ok || b.cells[to] != Empty {
					break
				}
				if to == Throne && p != King {
					continue // may pass over the empty throne
				}
				if !yield(Mv(from, to)) {
					return
				}
			}
		}
	}
}
