package criticalpath

// graph indexes tasks by position. Edges run from a dependency to the task
// that depends on it.
type graph struct {
	nodes []Task
	index map[string]int
	succs [][]int
	preds [][]int
	indeg []int
}

func newGraph(tasks []Task) *graph {
	g := &graph{
		nodes: make([]Task, 0, len(tasks)),
		index: make(map[string]int, len(tasks)),
	}
	for _, t := range tasks {
		if _, dup := g.index[t.ID]; dup {
			continue
		}
		g.index[t.ID] = len(g.nodes)
		g.nodes = append(g.nodes, t)
	}

	g.succs = make([][]int, len(g.nodes))
	g.preds = make([][]int, len(g.nodes))
	g.indeg = make([]int, len(g.nodes))
	for n, t := range g.nodes {
		for _, dep := range t.Dependencies {
			p, ok := g.index[dep]
			if !ok {
				continue
			}
			g.succs[p] = append(g.succs[p], n)
			g.preds[n] = append(g.preds[n], p)
			g.indeg[n]++
		}
	}
	return g
}

// topoOrder runs Kahn's algorithm with a FIFO queue seeded in input order.
// ok is false when some node was never released, which means a cycle.
func (g *graph) topoOrder() (order []int, ok bool) {
	indeg := make([]int, len(g.indeg))
	copy(indeg, g.indeg)

	queue := make([]int, 0, len(g.nodes))
	for n, d := range indeg {
		if d == 0 {
			queue = append(queue, n)
		}
	}

	order = make([]int, 0, len(g.nodes))
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		order = append(order, n)
		for _, m := range g.succs[n] {
			indeg[m]--
			if indeg[m] == 0 {
				queue = append(queue, m)
			}
		}
	}
	return order, len(order) == len(g.nodes)
}

// unordered returns the IDs missing from a partial order, in input order.
func (g *graph) unordered(order []int) []string {
	seen := make([]bool, len(g.nodes))
	for _, n := range order {
		seen[n] = true
	}
	var ids []string
	for n, ok := range seen {
		if !ok {
			ids = append(ids, g.nodes[n].ID)
		}
	}
	return ids
}
