package game

// throneState describes the throne when it is the far anchor of a capture.
type throneState int

const (
	throneEmpty throneState = iota
	throneHeld
	throneHeldBesieged // held by the king with three or more attackers around it
)

// throneCaptures[state][mover][candidate] reports whether a piece of side
// candidate, sandwiched between a piece of side mover and the throne, is
// captured. The empty throne is hostile to everyone. The king on the throne
// sides with the defenders unless the throne is besieged, when it is hostile
// to defenders as well.
var throneCaptures = [3][3][3]bool{
	throneEmpty: {
		AttackerSide: {DefenderSide: true},
		DefenderSide: {AttackerSide: true},
	},
	throneHeld: {
		DefenderSide: {AttackerSide: true},
	},
	throneHeldBesieged: {
		AttackerSide: {DefenderSide: true},
		DefenderSide: {AttackerSide: true},
	},
}

type captureResult int

const (
	noCapture captureResult = iota
	capturePiece
	captureKing
)

// captureRule decides the fate of the piece on c, sandwiched between the
// piece that just moved to s and the square s2 beyond c.
func (b *Board) captureRule(s, c, s2 Square) captureResult {
	mover, candidate := b.cells[s].Side(), b.cells[c]
	if candidate == Empty || candidate.Side() == mover {
		return noCapture
	}
	switch {
	case candidate == King && c.IsThroneArea():
		if b.kingSurrounded(c) {
			return captureKing
		}
		return noCapture
	case s2 == Throne:
		state := throneEmpty
		if b.cells[Throne] != Empty {
			state = throneHeld
			if b.ThroneBesieged() {
				state = throneHeldBesieged
			}
		}
		if throneCaptures[state][mover][candidate.Side()] {
			return capturePiece
		}
		return noCapture
	case b.cells[s2] != Empty && b.cells[s2].Side() == mover:
		if candidate == King {
			return captureKing
		}
		return capturePiece
	default:
		return noCapture
	}
}

// kingSurrounded reports whether all four neighbours of c, a square in the
// throne area, are hostile to the king: an attacker or the throne itself.
func (b *Board) kingSurrounded(c Square) bool {
	for dir := North; dir <= West; dir++ {
		n, _ := c.RookMove(dir, 1)
		if n != Throne && b.cells[n] != Attacker {
			return false
		}
	}
	return true
}

// resolveCaptures removes every piece captured by the move that ended on s
// and records the removals in rec.
func (b *Board) resolveCaptures(s Square, rec *undoRecord) {
	for dir := North; dir <= West; dir++ {
		s2, ok := s.RookMove(dir, 2)
		if !ok {
			continue
		}
		c := s.Between(s2)
		switch b.captureRule(s, c, s2) {
		case capturePiece:
			rec.captures[rec.ncaptures] = captured{sq: c, piece: b.cells[c]}
			rec.ncaptures++
			b.cells[c] = Empty
		case captureKing:
			rec.captures[rec.ncaptures] = captured{sq: c, piece: King}
			rec.ncaptures++
			b.cells[c] = Empty
			b.winner = AttackerSide
		}
	}
}
