// Package graph is a weighted graph stored as an adjacency matrix, with
// traversals built on the list-backed Queue and Stack containers.
package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrWrongFile is returned when a graph file is malformed.
	ErrWrongFile = errors.New("graph: wrong file")

	// ErrVertexOutOfRange is returned for a vertex outside 1..VertexCount.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrInvalidMatrix is returned for a non-square or negative matrix.
	ErrInvalidMatrix = errors.New("graph: invalid adjacency matrix")
)

// maxLineSize bounds a single matrix row in a graph file.
const maxLineSize = 16 << 20

// Graph is a graph of vertices numbered from 1, with a non-negative edge
// weight for every ordered pair. A weight of zero means no edge.
type Graph struct {
	matrix [][]int
}

// New returns a graph with a copy of the given adjacency matrix.
func New(matrix [][]int) (*Graph, error) {
	g := &Graph{matrix: make([][]int, len(matrix))}
	for i, row := range matrix {
		if len(row) != len(matrix) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrInvalidMatrix, i+1, len(row), len(matrix))
		}
		for j, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: negative weight at (%d, %d)",
					ErrInvalidMatrix, i+1, j+1)
			}
		}
		g.matrix[i] = append([]int(nil), row...)
	}
	return g, nil
}

// LoadFile reads a graph from the file at path. See Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load reads a graph in adjacency matrix form: a line holding the vertex
// count n (at least 2), then n lines of n non-negative integers separated
// by whitespace.
func Load(r io.Reader) (*Graph, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrWrongFile, len(lines)+1, err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no vertex count", ErrWrongFile)
	}
	header := strings.Fields(lines[0])
	if len(header) != 1 {
		return nil, fmt.Errorf("%w: first line must hold only the vertex count", ErrWrongFile)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil || n <= 1 {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrWrongFile, header[0])
	}
	if len(lines) != n+1 {
		return nil, fmt.Errorf("%w: got %d matrix rows, want %d", ErrWrongFile, len(lines)-1, n)
	}

	g := &Graph{matrix: make([][]int, n)}
	for i := range n {
		fields := strings.Fields(lines[i+1])
		if len(fields) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrWrongFile, i+1, len(fields), n)
		}

		row := make([]int, n)
		for j, field := range fields {
			w, err := strconv.Atoi(field)
			if err != nil || w < 0 {
				return nil, fmt.Errorf("%w: bad weight %q at (%d, %d)", ErrWrongFile, field, i+1, j+1)
			}
			row[j] = w
		}
		g.matrix[i] = row
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.matrix)
}

// At returns the weight of the edge from i to j.
func (g *Graph) At(i, j int) (int, error) {
	if err := g.checkVertex(i); err != nil {
		return 0, err
	}
	if err := g.checkVertex(j); err != nil {
		return 0, err
	}
	return g.matrix[i-1][j-1], nil
}

// Set changes the weight of the edge from i to j.
func (g *Graph) Set(i, j, weight int) error {
	if err := g.checkVertex(i); err != nil {
		return err
	}
	if err := g.checkVertex(j); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %d", ErrInvalidMatrix, weight)
	}
	g.matrix[i-1][j-1] = weight
	return nil
}

// IsUndirected reports whether the matrix is symmetric.
func (g *Graph) IsUndirected() bool {
	for i := range g.matrix {
		for j := i + 1; j < len(g.matrix); j++ {
			if g.matrix[i][j] != g.matrix[j][i] {
				return false
			}
		}
	}
	return true
}

// WriteDOT writes the graph in Graphviz DOT form.
func (g *Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph G {")
	for i := range g.matrix {
		fmt.Fprintf(bw, "  %d;\n", i+1)
	}

	undirected := g.IsUndirected()
	separator := " --> "
	if undirected {
		separator = " -- "
	}
	for i, row := range g.matrix {
		j := 0
		if undirected {
			j = i
		}
		for ; j < len(row); j++ {
			if row[j] != 0 {
				fmt.Fprintf(bw, "  %d%s%d;\n", i+1, separator, j+1)
			}
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func (g *Graph) checkVertex(v int) error {
	if v < 1 || v > len(g.matrix) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrVertexOutOfRange, v, len(g.matrix))
	}
	return nil
}

// adjacent reports whether there is an edge from i to j, both in range.
func (g *Graph) adjacent(i, j int) bool {
	return g.matrix[i-1][j-1] > 0
}
