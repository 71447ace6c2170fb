package graph

import "github.com/ringlist/ringlist/pkg/collections"

// BreadthFirstSearch returns the vertices reachable from start in
// breadth-first order. Neighbours are visited in ascending vertex order.
func (g *Graph) BreadthFirstSearch(start int) ([]int, error) {
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}

	result := []int{start}
	visited := make([]bool, g.VertexCount()+1)
	visited[start] = true

	pending := collections.NewQueue(start)
	for !pending.Empty() {
		from := pending.Front()
		pending.Pop()

		for to := 1; to <= g.VertexCount(); to++ {
			if !visited[to] && g.adjacent(from, to) {
				pending.Push(to)
				visited[to] = true
				result = append(result, to)
			}
		}
	}

	return result, nil
}

// DepthFirstSearch returns the vertices reachable from start in
// depth-first order, always descending into the lowest-numbered
// unvisited neighbour first.
func (g *Graph) DepthFirstSearch(start int) ([]int, error) {
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}

	result := []int{start}
	visited := make([]bool, g.VertexCount()+1)
	visited[start] = true

	path := collections.NewStack(start)
	from := start
	for len(result) != g.VertexCount() && !path.Empty() {
		if to := g.firstUnvisited(from, visited); to != 0 {
			path.Push(to)
			visited[to] = true
			result = append(result, to)
			from = to
			continue
		}

		// Dead end: back up one level.
		if path.Len() <= 1 {
			break
		}
		path.Pop()
		from = path.Top()
	}

	return result, nil
}

// firstUnvisited returns the lowest unvisited vertex adjacent to from,
// or 0 if there is none.
func (g *Graph) firstUnvisited(from int, visited []bool) int {
	for to := 1; to <= g.VertexCount(); to++ {
		if !visited[to] && g.adjacent(from, to) {
			return to
		}
	}
	return 0
}
