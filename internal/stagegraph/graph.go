// Package stagegraph defines the immutable, ordered stage sequence behind
// each guided activity. A graph is built once from data and never mutated;
// every learner run walks the same graph.
package stagegraph

import (
	"slices"
	"sort"
)

// Graph is the ordered stage sequence for one activity.
type Graph struct {
	activityID string
	stages     []Stage // sorted by Order ascending
	index      map[StageID]int
}

// New builds and validates a Graph from a stage slice.
// Stage order defines a total order: duplicate orders, duplicate IDs,
// negative rewards, or a malformed shape (no intro first or no single
// terminal completion stage last) are construction errors.
func New(activityID string, stages []Stage) (*Graph, error) {
	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	if err := validateStages(activityID, sorted); err != nil {
		return nil, err
	}

	index := make(map[StageID]int, len(sorted))
	for i, s := range sorted {
		index[s.ID] = i
	}

	return &Graph{
		activityID: activityID,
		stages:     sorted,
		index:      index,
	}, nil
}

// MustNew is New for static activity definitions; it panics on invalid data.
func MustNew(activityID string, stages []Stage) *Graph {
	g, err := New(activityID, stages)
	if err != nil {
		panic(err)
	}
	return g
}

// ActivityID returns the owning activity's identifier.
func (g *Graph) ActivityID() string {
	return g.activityID
}

// Count returns the number of stages.
func (g *Graph) Count() int {
	return len(g.stages)
}

// First returns the entry stage. It has no predecessor.
func (g *Graph) First() Stage {
	return g.stages[0]
}

// Terminal returns the final stage. It has no successor.
func (g *Graph) Terminal() Stage {
	return g.stages[len(g.stages)-1]
}

// Get returns the stage with the given ID.
func (g *Graph) Get(id StageID) (Stage, bool) {
	i, ok := g.index[id]
	if !ok {
		return Stage{}, false
	}
	return g.stages[i], true
}

// Next returns the successor of the given stage, or false for the
// terminal stage (and for unknown IDs).
func (g *Graph) Next(id StageID) (Stage, bool) {
	i, ok := g.index[id]
	if !ok || i+1 >= len(g.stages) {
		return Stage{}, false
	}
	return g.stages[i+1], true
}

// Prev returns the predecessor of the given stage, or false for the
// first stage (and for unknown IDs).
func (g *Graph) Prev(id StageID) (Stage, bool) {
	i, ok := g.index[id]
	if !ok || i == 0 {
		return Stage{}, false
	}
	return g.stages[i-1], true
}

// IndexOf returns the zero-based position of the stage, or -1 if unknown.
func (g *Graph) IndexOf(id StageID) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}
	return i
}

// Stages returns all stages in order.
func (g *Graph) Stages() []Stage {
	return slices.Clone(g.stages)
}

// TotalStars returns the sum of all stage rewards.
func (g *Graph) TotalStars() int {
	total := 0
	for _, s := range g.stages {
		total += s.RewardStars
	}
	return total
}
