package partitioner

import da "github.com/lintang-b-s/tripartition/pkg/datastructure"

type GroupID uint8

const (
	NUM_GROUPS = 3

	DEFAULT_ATTEMPTS            = 10
	DEFAULT_INITIAL_TEMPERATURE = 10.0
	DEFAULT_COOLING_RATE        = 0.95
	DEFAULT_MIN_TEMPERATURE     = 0.1
	DEFAULT_MAX_SWEEPS          = 10000
	DEFAULT_RECONCILE_INTERVAL  = 16
	DEFAULT_WORKERS             = 1
)

// AttemptStats summarizes one annealing attempt.
type AttemptStats struct {
	Attempt       int
	Seed          uint64
	InitialCost   int
	BestCost      int
	Sweeps        int
	AcceptedMoves int
	AcceptedSwaps int
	// BestCostPerSweep[i] is the best cost seen after sweep i, never increasing.
	BestCostPerSweep []int
	Truncated        bool
}

type Result struct {
	Assignment    []GroupID // map from vertex id to group id
	CrossingCount int
	GroupSizes    [NUM_GROUPS]int
	BestAttempt   int
	Truncated     bool // time budget or context ended the search early
	Attempts      []AttemptStats
}

func (r *Result) GetGroup(v da.Index) GroupID {
	return r.Assignment[v]
}

// Members returns the vertices of group g in increasing order.
func (r *Result) Members(g GroupID) []da.Index {
	members := make([]da.Index, 0, r.GroupSizes[g])
	for v, group := range r.Assignment {
		if group == g {
			members = append(members, da.Index(v))
		}
	}
	return members
}
