package core

import "container/heap"

// degreeCentralities computes normalized degree, in-degree, and out-degree
// centrality for every node. The normalization divisor is n-1; a graph with
// fewer than two nodes yields all zeros.
func (g *Graph) degreeCentralities() (degree, inDegree, outDegree []float64) {
	n := len(g.nodes)
	degree = make([]float64, n)
	inDegree = make([]float64, n)
	outDegree = make([]float64, n)
	if n < 2 {
		return degree, inDegree, outDegree
	}
	norm := 1.0 / float64(n-1)
	for i := range g.nodes {
		in := float64(len(g.in[i]))
		out := float64(len(g.out[i]))
		inDegree[i] = in * norm
		outDegree[i] = out * norm
		degree[i] = (in + out) * norm
	}
	return degree, inDegree, outDegree
}

// closenessCentralities computes closeness centrality using incoming
// distances (hops along edge direction from every node that can reach the
// target), with the improved scaling by reachable-component size:
//
//	C(u) = ((r-1) / totsp) * ((r-1) / (n-1))
//
// where r is the number of nodes that can reach u, including u itself.
// Unreachable nodes are simply excluded from the sum.
func (g *Graph) closenessCentralities() []float64 {
	n := len(g.nodes)
	closeness := make([]float64, n)
	if n < 2 {
		return closeness
	}
	for u := range g.nodes {
		// BFS over reverse adjacency: dist[v] is the hop distance of the
		// path v -> ... -> u following edge direction.
		dist := make([]int, n)
		for i := range dist {
			dist[i] = -1
		}
		dist[u] = 0
		queue := []int{u}
		total := 0
		reached := 1
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for w := range g.in[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					total += dist[w]
					reached++
					queue = append(queue, w)
				}
			}
		}
		if total > 0 {
			r := float64(reached - 1)
			closeness[u] = (r / float64(total)) * (r / float64(n-1))
		}
	}
	return closeness
}

// betweennessCentralities computes normalized weight-aware betweenness with
// Brandes' algorithm, using Dijkstra for the shortest-path phase. Edge
// weight is treated directly as path cost, so a heavily-weighted edge is a
// long edge. Normalization uses the directed factor 1/((n-1)(n-2)).
func (g *Graph) betweennessCentralities() []float64 {
	n := len(g.nodes)
	cb := make([]float64, n)
	if n < 3 {
		return cb
	}
	for s := range g.nodes {
		stack, sigma, pred := g.brandesDijkstra(s)
		brandesAccumulate(s, stack, sigma, pred, cb)
	}
	norm := 1.0 / float64((n-1)*(n-2))
	for i := range cb {
		cb[i] *= norm
	}
	return cb
}

// distHeap is a min-heap of node indexes ordered by tentative distance.
type distHeap struct {
	items []int
	dist  []float64
}

func (h *distHeap) Len() int            { return len(h.items) }
func (h *distHeap) Less(i, j int) bool  { return h.dist[h.items[i]] < h.dist[h.items[j]] }
func (h *distHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *distHeap) Push(x any)          { h.items = append(h.items, x.(int)) }
func (h *distHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// brandesDijkstra performs the shortest-path phase of Brandes' algorithm
// from source s over weighted edges. It returns nodes in settle order (for
// reverse back-propagation), shortest-path counts, and predecessor lists.
func (g *Graph) brandesDijkstra(s int) ([]int, []float64, [][]int) {
	const eps = 1e-12
	n := len(g.nodes)
	stack := make([]int, 0, n)
	pred := make([][]int, n)
	sigma := make([]float64, n)
	dist := make([]float64, n)
	done := make([]bool, n)
	seen := make([]bool, n)
	for i := range dist {
		dist[i] = -1
	}
	sigma[s] = 1
	dist[s] = 0
	seen[s] = true

	h := &distHeap{dist: dist}
	heap.Push(h, s)
	for h.Len() > 0 {
		v := heap.Pop(h).(int)
		if done[v] {
			continue
		}
		done[v] = true
		stack = append(stack, v)
		for w, weight := range g.out[v] {
			if done[w] {
				continue
			}
			d := dist[v] + weight
			switch {
			case !seen[w] || d < dist[w]-eps:
				dist[w] = d
				seen[w] = true
				sigma[w] = sigma[v]
				pred[w] = pred[w][:0]
				pred[w] = append(pred[w], v)
				heap.Push(h, w)
			case d <= dist[w]+eps:
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}
	return stack, sigma, pred
}

// brandesAccumulate performs the back-propagation phase of Brandes'
// algorithm, accumulating pair dependencies into cb.
func brandesAccumulate(s int, stack []int, sigma []float64, pred [][]int, cb []float64) {
	delta := make([]float64, len(cb))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}
