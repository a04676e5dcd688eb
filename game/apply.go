package game

// Apply plays mv for the side to move. A rejected move returns a *MoveError
// and leaves the board unchanged.
//
// After relocating the piece, Apply in order: declares a defender win if the
// king stands on an edge; declares a win for the side that did not move if
// the grid, with the opponent to move, repeats a position in the history;
// resolves captures around the destination; passes the turn; declares a loss
// for the new side to move if it has no legal move; and, when a move limit n
// is set, declares a win for the side to move once 2n moves have been made.
func (b *Board) Apply(mv Move) error {
	if err := b.Check(mv); err != nil {
		return err
	}

	rec := undoRecord{
		move:     mv,
		piece:    b.cells[mv.From],
		before:   b.key(),
		winner:   b.winner,
		repeated: b.repeated,
	}
	b.cells[mv.To] = rec.piece
	b.cells[mv.From] = Empty

	if king, ok := b.KingSquare(); !ok {
		b.winner = AttackerSide
	} else if king.IsEdge() {
		b.winner = DefenderSide
	}

	// Repetition is judged on the grid before any capture.
	reached := b.key()
	reached[0] = b.turn.Opponent().Letter()
	if b.seen[reached] > 0 {
		b.winner = b.turn.Opponent()
		b.repeated = true
	}

	b.resolveCaptures(mv.To, &rec)

	b.turn = b.turn.Opponent()

	b.history = append(b.history, rec)
	b.seen[rec.before]++

	if !b.HasMove(b.turn) {
		b.winner = b.turn.Opponent()
	}
	b.moveCount++
	if b.moveLimit > 0 && b.moveCount >= 2*b.moveLimit {
		b.winner = b.turn
	}
	return nil
}

// Undo reverses the last applied move and reports whether there was one.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	if b.seen[rec.before]--; b.seen[rec.before] <= 0 {
		delete(b.seen, rec.before)
	}

	for i := rec.ncaptures - 1; i >= 0; i-- {
		c := rec.captures[i]
		b.cells[c.sq] = c.piece
	}
	b.cells[rec.move.From] = rec.piece
	b.cells[rec.move.To] = Empty

	b.turn = b.turn.Opponent()
	b.moveCount--
	b.winner = rec.winner
	b.repeated = rec.repeated
	return true
}
