package metrics

import (
	"tablut/game"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // positions visited, root included
	Leaves   int // static evaluations
	Cutoffs  int
	Score    int
	Evaluate game.Evaluate
}

type MoveMetric struct {
	Step int
	Side game.Side
	Move game.Move
	SearchMetric
}

type GameMetric struct {
	ID           string // gamemaster.Session ID
	StartingSide game.Side
	Winner       game.Side
	Repeated     bool
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(depth int, evaluate game.Evaluate)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(score int) SearchMetric
}

// The search is sequential, so the counters need no synchronization.
type collector struct {
	depth     int
	evaluate  game.Evaluate
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, evaluate game.Evaluate) {
	m.startTime = time.Now()
	m.depth = depth
	m.evaluate = evaluate
	m.nodes, m.leaves, m.cutoffs = 0, 0, 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Score:    score,
		Evaluate: m.evaluate,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, evaluate game.Evaluate) {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddLeaf()                                {}
func (m *dummyCollector) AddCutoff()                              {}
func (m *dummyCollector) Complete(score int) SearchMetric         { return SearchMetric{} }
