package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/ringlist/ringlist/pkg/collections"
)

var (
	// ErrNoPath is returned when the finish vertex cannot be reached.
	ErrNoPath = errors.New("graph: no path between vertices")

	// ErrNotSpanning is returned when a spanning tree is requested for a
	// graph that is directed or disconnected.
	ErrNotSpanning = errors.New("graph: graph must be connected and undirected")
)

const unreachable = math.MaxInt

// ShortestPath returns the length of the shortest path from start to
// finish and the vertices along it, start and finish included. Self-loops
// are ignored, so the path from a vertex to itself has length 0.
//
// It returns ErrNoPath if finish is not reachable from start.
func (g *Graph) ShortestPath(start, finish int) (int, []int, error) {
	if err := g.checkVertex(start); err != nil {
		return 0, nil, err
	}
	if err := g.checkVertex(finish); err != nil {
		return 0, nil, err
	}

	distance, previous := g.dijkstra(start)
	if distance[finish] == unreachable {
		return 0, nil, fmt.Errorf("%w: %d is not reachable from %d", ErrNoPath, finish, start)
	}

	path := collections.New[int]()
	for v := finish; v != 0; v = previous[v] {
		path.PushFront(v)
	}

	return distance[finish], path.Values(), nil
}

// dijkstra returns the distance from start to every vertex, indexed from
// 1, and the predecessor of each vertex on its shortest path. The
// predecessor of start and of unreachable vertices is 0.
func (g *Graph) dijkstra(start int) (distance, previous []int) {
	n := g.VertexCount()
	distance = make([]int, n+1)
	previous = make([]int, n+1)
	visited := make([]bool, n+1)
	for v := range distance {
		distance[v] = unreachable
	}
	distance[start] = 0

	for current := start; current != 0; current = nearestUnvisited(distance, visited) {
		visited[current] = true
		for to := 1; to <= n; to++ {
			if to == current || !g.adjacent(current, to) {
				continue
			}
			if d := distance[current] + g.matrix[current-1][to-1]; d < distance[to] {
				distance[to] = d
				previous[to] = current
			}
		}
	}

	return distance, previous
}

// nearestUnvisited returns the lowest-numbered reachable unvisited vertex
// with the smallest distance, or 0 if there is none.
func nearestUnvisited(distance []int, visited []bool) int {
	nearest := 0
	for v := 1; v < len(distance); v++ {
		if !visited[v] && distance[v] != unreachable &&
			(nearest == 0 || distance[v] < distance[nearest]) {
			nearest = v
		}
	}
	return nearest
}

// AllShortestPaths returns the matrix of shortest path lengths between
// every ordered pair of vertices, computed with the Floyd-Warshall
// algorithm. Entry [i-1][j-1] is the distance from i to j, 0 on the
// diagonal and -1 when j is not reachable from i.
func (g *Graph) AllShortestPaths() [][]int {
	n := g.VertexCount()
	distance := make([][]int, n)
	for i, row := range g.matrix {
		distance[i] = make([]int, n)
		for j, w := range row {
			switch {
			case i == j:
				distance[i][j] = 0
			case w > 0:
				distance[i][j] = w
			default:
				distance[i][j] = unreachable
			}
		}
	}

	for k := range n {
		for i := range n {
			if distance[i][k] == unreachable {
				continue
			}
			for j := range n {
				if distance[k][j] == unreachable {
					continue
				}
				if d := distance[i][k] + distance[k][j]; d < distance[i][j] {
					distance[i][j] = d
				}
			}
		}
	}

	for _, row := range distance {
		for j, d := range row {
			if d == unreachable {
				row[j] = -1
			}
		}
	}
	return distance
}

// LeastSpanningTree returns the adjacency matrix of a minimum spanning
// tree, built with Prim's algorithm from vertex 1. Among edges of equal
// weight the one reaching the lowest-numbered vertex is taken first, and
// an existing tree edge is kept over a new one of the same weight.
//
// The graph must be undirected and connected, otherwise ErrNotSpanning is
// returned.
func (g *Graph) LeastSpanningTree() ([][]int, error) {
	n := g.VertexCount()
	if n == 0 || !g.IsUndirected() {
		return nil, ErrNotSpanning
	}
	if reached, _ := g.BreadthFirstSearch(1); len(reached) != n {
		return nil, fmt.Errorf("%w: only %d of %d vertices reachable", ErrNotSpanning, len(reached), n)
	}

	tree := make([][]int, n)
	for i := range tree {
		tree[i] = make([]int, n)
	}

	// cheapest[v] is the lightest known edge from the tree to v, via parent[v].
	cheapest := make([]int, n+1)
	parent := make([]int, n+1)
	inTree := make([]bool, n+1)
	for v := range cheapest {
		cheapest[v] = unreachable
	}

	for current := 1; current != 0; current = nearestUnvisited(cheapest, inTree) {
		inTree[current] = true
		if p := parent[current]; p != 0 {
			w := g.matrix[p-1][current-1]
			tree[p-1][current-1] = w
			tree[current-1][p-1] = w
		}

		for to := 1; to <= n; to++ {
			if inTree[to] || !g.adjacent(current, to) {
				continue
			}
			if w := g.matrix[current-1][to-1]; w < cheapest[to] {
				cheapest[to] = w
				parent[to] = current
			}
		}
	}

	return tree, nil
}
