// meta/meta.go
package meta

// DefaultSearchDepth is the number of plies searched when no depth is given.
const DefaultSearchDepth = 1

// WinningValue is the evaluation bonus for a decided game.
const WinningValue = 9 * 11

// MaxTurns caps a locally run game that has no move limit.
const MaxTurns = 500
