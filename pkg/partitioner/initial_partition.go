package partitioner

import "golang.org/x/exp/rand"

// roundRobinAssignment puts vertex i into group i mod 3.
func roundRobinAssignment(n int) []GroupID {
	groups := make([]GroupID, n)
	for v := range groups {
		groups[v] = GroupID(v % NUM_GROUPS)
	}
	return groups
}

// randomBalancedAssignment draws floor(n/3) vertices uniformly without replacement for group 0,
// then for group 1, and gives the rest to group 2. when n mod 3 = 2 group 1 takes one extra
// vertex so that group 2 does not exceed ceil(n/3).
func randomBalancedAssignment(n int, rd *rand.Rand) []GroupID {
	groups := make([]GroupID, n)
	perm := rd.Perm(n)
	targets := balancedTargetSizes(n)

	pos := 0
	for g := 0; g < NUM_GROUPS; g++ {
		for k := 0; k < targets[g]; k++ {
			groups[perm[pos]] = GroupID(g)
			pos++
		}
	}
	return groups
}
