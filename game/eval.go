package game

import "tablut/meta"

// Evaluate scores a position from the defenders' point of view: positive
// favours the defenders, negative the attackers.
type Evaluate func(*Board) int

// EvaluateMaterial adds a terminal bonus for a decided game to the difference
// between defender and attacker piece counts.
func EvaluateMaterial(b *Board) int {
	return terminalScore(b) + b.Count(DefenderSide) - b.Count(AttackerSide)
}

// EvaluateKingPressure is EvaluateMaterial, less one point for each attacker
// two squares from the king along a row or column.
func EvaluateKingPressure(b *Board) int {
	score := EvaluateMaterial(b)
	king, ok := b.KingSquare()
	if !ok {
		return score
	}
	for dir := North; dir <= West; dir++ {
		if sq, ok := king.RookMove(dir, 2); ok && b.cells[sq] == Attacker {
			score--
		}
	}
	return score
}

func terminalScore(b *Board) int {
	switch b.winner {
	case DefenderSide:
		return meta.WinningValue
	case AttackerSide:
		return -meta.WinningValue
	default:
		return 0
	}
}

// Evaluations names the evaluation functions selectable by configuration.
var Evaluations = map[string]Evaluate{
	"material": EvaluateMaterial,
	"pressure": EvaluateKingPressure,
}
