package metrics

// Agent kinds that can play unattended.
const (
	SearchAgent = "ai"
	RandomAgent = "random"
)

type AgentConfig struct {
	ID         int
	Kind       string
	Depth      int    // search agents only
	Evaluation string // key of game.Evaluations, search agents only
	Seed       uint64 // random agents only
}
