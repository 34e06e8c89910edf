package partitioner

import (
	"context"
	"math"

	da "github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

/*
annealer is the working state of one attempt.

conn[v][g] is the number of neighbours of v currently in group g, so the cost change of
moving v from a to b is conn[v][a] - conn[v][b]: edges to a become crossing, edges to b stop
crossing. cost is updated with these deltas and reconciled against CrossingCount every
ReconcileInterval sweeps.
*/
type annealer struct {
	graph  *da.Graph
	config Config
	rd     *rand.Rand
	logger *zap.Logger

	n       int
	minSize int
	maxSize int

	groups []GroupID
	sizes  [NUM_GROUPS]int
	conn   [][NUM_GROUPS]int
	cost   int

	bestGroups []GroupID
	bestCost   int

	candidates []da.Index // scratch buffer for swap partners
	stats      AttemptStats
}

func newAnnealer(graph *da.Graph, config Config, initial []GroupID, rd *rand.Rand, logger *zap.Logger) *annealer {
	n := graph.NumberOfVertices()
	minSize, maxSize := BalanceBounds(n)
	an := &annealer{
		graph:      graph,
		config:     config,
		rd:         rd,
		logger:     logger,
		n:          n,
		minSize:    minSize,
		maxSize:    maxSize,
		groups:     initial,
		conn:       make([][NUM_GROUPS]int, n),
		bestGroups: make([]GroupID, n),
		candidates: make([]da.Index, 0, maxSize),
	}
	an.recompute()
	an.stats.InitialCost = an.cost
	an.bestCost = an.cost
	copy(an.bestGroups, an.groups)
	return an
}

// recompute rebuilds sizes, conn and cost from groups.
func (an *annealer) recompute() {
	an.sizes = ComputeGroupSizes(an.groups)
	for v := 0; v < an.n; v++ {
		an.conn[v] = [NUM_GROUPS]int{}
		an.graph.ForEachNeighbor(da.Index(v), func(u da.Index) {
			an.conn[v][an.groups[u]]++
		})
	}
	an.cost = CrossingCount(an.graph, an.groups)
}

// reconcile compares the incrementally maintained cost with a full recomputation.
func (an *annealer) reconcile() {
	running := an.cost
	an.recompute()
	if running != an.cost {
		an.logger.Warn("incremental crossing count drifted, resynchronized",
			zap.Int("attempt", an.stats.Attempt),
			zap.Int("running", running),
			zap.Int("recomputed", an.cost))
	}
}

// admissible reports whether moving one vertex from a to b keeps both groups within the balance bounds.
func (an *annealer) admissible(a, b GroupID) bool {
	return an.sizes[b]+1 <= an.maxSize && an.sizes[a]-1 >= an.minSize
}

func (an *annealer) moveDelta(v da.Index, b GroupID) int {
	a := an.groups[v]
	return an.conn[v][a] - an.conn[v][b]
}

// swapDelta is the cost change of exchanging v and u, which sit in different groups.
// the edge (v,u) stays crossing, the two move deltas each count it as fixed so it is added back twice.
func (an *annealer) swapDelta(v, u da.Index) int {
	a, b := an.groups[v], an.groups[u]
	delta := (an.conn[v][a] - an.conn[v][b]) + (an.conn[u][b] - an.conn[u][a])
	if an.graph.IsAdjacent(v, u) {
		delta += 2
	}
	return delta
}

func (an *annealer) applyMove(v da.Index, b GroupID) {
	a := an.groups[v]
	an.cost += an.moveDelta(v, b)
	an.graph.ForEachNeighbor(v, func(u da.Index) {
		an.conn[u][a]--
		an.conn[u][b]++
	})
	an.groups[v] = b
	an.sizes[a]--
	an.sizes[b]++
}

func (an *annealer) applySwap(v, u da.Index) {
	a, b := an.groups[v], an.groups[u]
	util.AssertPanic(a != b, "swap partners must be in different groups")
	an.applyMove(v, b)
	an.applyMove(u, a)
}

// accept is the metropolis criterion: improving moves always, others with probability exp(-delta/T).
func (an *annealer) accept(delta int, temperature float64) bool {
	if delta < 0 {
		return true
	}
	return an.rd.Float64() < math.Exp(-float64(delta)/temperature)
}

// selectSwapPartner returns the first member u of group b, in index order, whose swap with v
// improves the cost. otherwise one random member of b is offered to the metropolis criterion.
func (an *annealer) selectSwapPartner(v da.Index, b GroupID, temperature float64) (da.Index, int, bool) {
	an.candidates = an.candidates[:0]
	for u := 0; u < an.n; u++ {
		if an.groups[u] != b {
			continue
		}
		if delta := an.swapDelta(v, da.Index(u)); delta < 0 {
			return da.Index(u), delta, true
		}
		an.candidates = append(an.candidates, da.Index(u))
	}

	if len(an.candidates) == 0 {
		return 0, 0, false
	}
	u := an.candidates[an.rd.Intn(len(an.candidates))]
	delta := an.swapDelta(v, u)
	if an.accept(delta, temperature) {
		return u, delta, true
	}
	return 0, 0, false
}

func (an *annealer) observe() {
	if an.cost < an.bestCost {
		an.bestCost = an.cost
		copy(an.bestGroups, an.groups)
	}
}

/*
sweep visits every vertex once in index order and tries the other groups in increasing order.
an admissible single-vertex move is offered to the metropolis criterion; when the balance
bounds forbid the move (always the case when 3 divides n) a swap with a member of the target
group is tried instead, swaps never change group sizes. the first accepted move ends the
vertex's turn. returns whether any accepted move strictly improved the cost.
*/
func (an *annealer) sweep(temperature float64) bool {
	improved := false
	for vi := 0; vi < an.n; vi++ {
		v := da.Index(vi)
		a := an.groups[v]
		for g := GroupID(0); g < NUM_GROUPS; g++ {
			if g == a {
				continue
			}

			if an.admissible(a, g) {
				delta := an.moveDelta(v, g)
				if !an.accept(delta, temperature) {
					continue
				}
				an.applyMove(v, g)
				an.stats.AcceptedMoves++
				improved = improved || delta < 0
				an.observe()
				break
			}

			u, delta, ok := an.selectSwapPartner(v, g, temperature)
			if !ok {
				continue
			}
			an.applySwap(v, u)
			an.stats.AcceptedSwaps++
			improved = improved || delta < 0
			an.observe()
			break
		}
	}
	return improved
}

/*
run anneals until the temperature is below MinTemperature and the last sweep made no
improving move, or MaxSweeps sweeps ran, or ctx is done. the temperature is multiplied by
CoolingRate after every sweep.
*/
func (an *annealer) run(ctx context.Context) {
	temperature := an.config.InitialTemperature
	improvedLast := true
	an.stats.BestCostPerSweep = make([]int, 0)

	for sweep := 0; sweep < an.config.MaxSweeps; sweep++ {
		if temperature < an.config.MinTemperature && !improvedLast {
			break
		}
		if util.StopConcurrentOperation(ctx) {
			an.stats.Truncated = true
			break
		}

		improvedLast = an.sweep(temperature)
		an.stats.Sweeps++
		an.stats.BestCostPerSweep = append(an.stats.BestCostPerSweep, an.bestCost)
		temperature *= an.config.CoolingRate

		if an.stats.Sweeps%an.config.ReconcileInterval == 0 {
			an.reconcile()
			an.observe()
		}
	}

	an.reconcile()
	an.observe()
	an.bestCost = CrossingCount(an.graph, an.bestGroups)
	an.stats.BestCost = an.bestCost
}
