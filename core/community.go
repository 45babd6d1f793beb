package core

import "sort"

// communities detects subgroups with greedy modularity maximization (the
// Clauset-Newman-Moore agglomeration) on the weighted undirected projection
// of the graph. Every node starts in its own community; the pair of
// connected communities whose merge yields the largest modularity gain is
// merged repeatedly until no merge improves modularity.
//
// An edgeless graph yields no communities at all rather than one trivial
// community per node. With edges present, members untouched by any edge
// still surface as singleton groups, keeping the partition a full cover.
func (g *Graph) communities() [][]string {
	n := len(g.nodes)
	if n == 0 || len(g.edges) == 0 {
		return nil
	}

	und := g.undirected()

	// Total undirected edge weight (each pair counted once) and weighted
	// degrees for the modularity null model.
	wDegree := make([]float64, n)
	var m2 float64 // 2m: every endpoint contribution
	for i := range und {
		for _, w := range und[i] {
			wDegree[i] += w
			m2 += w
		}
	}
	if m2 == 0 {
		return nil
	}

	// comm[i] is the community label of node i; labels start as node indexes.
	comm := make([]int, n)
	for i := range comm {
		comm[i] = i
	}
	// Per-community aggregates: cross-weights and total weighted degree.
	cross := make([]map[int]float64, n)
	aTot := make([]float64, n)
	alive := make([]bool, n)
	for i := range und {
		cross[i] = make(map[int]float64, len(und[i]))
		for j, w := range und[i] {
			cross[i][j] = w
		}
		aTot[i] = wDegree[i] / m2
		alive[i] = true
	}

	for {
		bestGain := 0.0
		bestA, bestB := -1, -1
		for a := 0; a < n; a++ {
			if !alive[a] {
				continue
			}
			for b, w := range cross[a] {
				if b <= a || !alive[b] {
					continue
				}
				// Modularity gain of merging communities a and b.
				gain := 2 * (w/m2 - aTot[a]*aTot[b])
				if gain > bestGain {
					bestGain = gain
					bestA, bestB = a, b
				}
			}
		}
		if bestA < 0 {
			break
		}
		mergeCommunities(comm, cross, aTot, alive, bestA, bestB)
	}

	groups := make(map[int][]string)
	for i, c := range comm {
		groups[c] = append(groups[c], g.nodes[i])
	}
	result := make([][]string, 0, len(groups))
	for _, ids := range groups {
		sort.Strings(ids)
		result = append(result, ids)
	}
	sort.Slice(result, func(i, j int) bool {
		if len(result[i]) != len(result[j]) {
			return len(result[i]) > len(result[j])
		}
		return result[i][0] < result[j][0]
	})
	return result
}

// mergeCommunities folds community b into community a, relabeling members
// and merging the cross-weight and degree aggregates.
func mergeCommunities(comm []int, cross []map[int]float64, aTot []float64, alive []bool, a, b int) {
	for i, c := range comm {
		if c == b {
			comm[i] = a
		}
	}
	for other, w := range cross[b] {
		if other == a {
			continue
		}
		cross[a][other] += w
		cross[other][a] += w
		delete(cross[other], b)
	}
	delete(cross[a], b)
	aTot[a] += aTot[b]
	alive[b] = false
	cross[b] = nil
}
