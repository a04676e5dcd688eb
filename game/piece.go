package game

// Side is one of the two players, or NoSide for an empty square.
type Side uint8

const (
	NoSide Side = iota
	AttackerSide
	DefenderSide
)

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case AttackerSide:
		return DefenderSide
	case DefenderSide:
		return AttackerSide
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case AttackerSide:
		return "attacker"
	case DefenderSide:
		return "defender"
	default:
		return "none"
	}
}

// Letter is the single character used for s in encoded positions.
func (s Side) Letter() byte {
	switch s {
	case AttackerSide:
		return 'A'
	case DefenderSide:
		return 'D'
	default:
		return '-'
	}
}

// Piece is the content of a square.
type Piece uint8

const (
	Empty Piece = iota
	Attacker
	Defender
	King
)

// Side returns the side controlling p. The king belongs to the defenders.
func (p Piece) Side() Side {
	switch p {
	case Attacker:
		return AttackerSide
	case Defender, King:
		return DefenderSide
	default:
		return NoSide
	}
}

// Letter is the single character used for p in encodings and rendering.
func (p Piece) Letter() byte {
	switch p {
	case Attacker:
		return 'A'
	case Defender:
		return 'D'
	case King:
		return 'K'
	default:
		return '-'
	}
}

func (p Piece) String() string {
	switch p {
	case Attacker:
		return "attacker"
	case Defender:
		return "defender"
	case King:
		return "king"
	default:
		return "empty"
	}
}

func pieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'A':
		return Attacker, true
	case 'D':
		return Defender, true
	case 'K':
		return King, true
	case '-':
		return Empty, true
	default:
		return Empty, false
	}
}
