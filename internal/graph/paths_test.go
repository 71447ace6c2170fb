package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringlist/ringlist/internal/graph"
)

func mustNew(t *testing.T, matrix [][]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(matrix)
	require.NoError(t, err)
	return g
}

// tree12 has edges 1-2, 1-3, 2-4, 2-5, 3-6, 3-7, 4-8, 4-9, 9-10,
// 9-11, 9-12, all of weight 1.
var tree12 = [][]int{
	{0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
}

var (
	complete4 = [][]int{{0, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 0, 1}, {1, 1, 1, 0}}
	complete6 = [][]int{
		{0, 1, 1, 1, 1, 1},
		{1, 0, 1, 1, 1, 1},
		{1, 1, 0, 1, 1, 1},
		{1, 1, 1, 0, 1, 1},
		{1, 1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1, 0},
	}
	line5 = [][]int{
		{0, 1, 0, 0, 0}, {1, 0, 1, 0, 0}, {0, 1, 0, 1, 0}, {0, 0, 1, 0, 1}, {0, 0, 0, 1, 0},
	}
	star5 = [][]int{
		{0, 1, 1, 1, 1}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0},
	}
	oneWay    = [][]int{{0, 10, 2, 100}, {0, 0, 0, 1}, {0, 0, 0, 20}, {0, 0, 0, 0}}
	directed  = [][]int{{0, 10, 2, 100}, {0, 0, 0, 1}, {0, 0, 0, 20}, {1, 0, 0, 0}}
	twoApart  = [][]int{{0, 0}, {0, 0}}
	twoJoined = [][]int{{0, 1}, {1, 0}}
	twoLoop   = [][]int{{0, 2}, {2, 10}}
	oneOff    = [][]int{
		{0, 1, 1, 1, 0}, {1, 0, 1, 1, 0}, {1, 1, 0, 1, 0}, {1, 1, 1, 0, 0}, {0, 0, 0, 0, 0},
	}
	weighted11 = [][]int{
		{0, 29, 20, 21, 16, 31, 100, 12, 4, 31, 18},
		{29, 0, 15, 29, 28, 40, 72, 21, 29, 41, 12},
		{20, 15, 0, 15, 14, 25, 81, 9, 23, 27, 13},
		{21, 29, 15, 0, 4, 12, 92, 12, 25, 13, 25},
		{16, 28, 14, 4, 0, 16, 94, 9, 20, 16, 22},
		{31, 40, 25, 12, 16, 0, 95, 24, 36, 3, 37},
		{100, 72, 81, 92, 94, 95, 0, 90, 101, 99, 84},
		{12, 21, 9, 12, 9, 24, 90, 0, 15, 25, 13},
		{4, 29, 23, 25, 20, 36, 101, 15, 0, 35, 18},
		{31, 41, 27, 13, 16, 3, 99, 25, 35, 0, 38},
		{18, 12, 13, 25, 22, 37, 84, 13, 18, 38, 0},
	}
)

func TestShortestPath(t *testing.T) {
	testCases := []struct {
		name          string
		matrix        [][]int
		start, finish int
		distance      int
		path          []int
	}{
		{"tree to deep leaf", tree12, 1, 12, 4, []int{1, 2, 4, 9, 12}},
		{"tree to near leaf", tree12, 1, 5, 2, []int{1, 2, 5}},
		{"complete", complete4, 1, 4, 1, []int{1, 4}},
		{"line end to end", line5, 1, 5, 4, []int{1, 2, 3, 4, 5}},
		{"star from hub", star5, 1, 5, 1, []int{1, 5}},
		{"star leaf to leaf", star5, 4, 5, 2, []int{4, 1, 5}},
		{"one way detour is cheaper", oneWay, 1, 4, 11, []int{1, 2, 4}},
		{"one way direct", oneWay, 2, 4, 1, []int{2, 4}},
		{"directed", directed, 1, 4, 11, []int{1, 2, 4}},
		{"directed back edge", directed, 2, 3, 4, []int{2, 4, 1, 3}},
		{"to itself", directed, 3, 3, 0, []int{3}},
		{"single vertex", [][]int{{0}}, 1, 1, 0, []int{1}},
		{"single vertex loop", [][]int{{7}}, 1, 1, 0, []int{1}},
		{"loop is ignored", twoLoop, 2, 2, 0, []int{2}},
		{"two joined", twoJoined, 1, 2, 1, []int{1, 2}},
		{"reachable part", oneOff, 1, 4, 1, []int{1, 4}},
		{"all connected", complete6, 1, 6, 1, []int{1, 6}},
		{"weighted direct", weighted11, 1, 9, 4, nil},
		{"weighted far vertex", weighted11, 1, 7, 100, nil},
		{"weighted through others", weighted11, 1, 4, 20, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			distance, path, err := g.ShortestPath(tc.start, tc.finish)

			require.NoError(t, err)
			assert.Equal(t, tc.distance, distance)
			if tc.path != nil {
				assert.Equal(t, tc.path, path)
			}
			assert.Equal(t, tc.start, path[0])
			assert.Equal(t, tc.finish, path[len(path)-1])
		})
	}
}

func TestShortestPath_PathLengthMatchesDistance(t *testing.T) {
	g := mustNew(t, weighted11)

	for finish := 1; finish <= g.VertexCount(); finish++ {
		distance, path, err := g.ShortestPath(1, finish)
		require.NoError(t, err)

		total := 0
		for i := 1; i < len(path); i++ {
			w, err := g.At(path[i-1], path[i])
			require.NoError(t, err)
			total += w
		}
		assert.Equal(t, distance, total, "path to %d", finish)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	testCases := []struct {
		name          string
		matrix        [][]int
		start, finish int
	}{
		{"two apart", twoApart, 1, 2},
		{"isolated vertex", oneOff, 1, 5},
		{"against one way edges", oneWay, 4, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			_, path, err := g.ShortestPath(tc.start, tc.finish)

			assert.ErrorIs(t, err, graph.ErrNoPath)
			assert.Nil(t, path)
		})
	}
}

func TestShortestPath_OutOfRange(t *testing.T) {
	testCases := []struct {
		name          string
		matrix        [][]int
		start, finish int
	}{
		{"zero start", [][]int{{0}}, 0, 1},
		{"finish past end", [][]int{{0}}, 1, 2},
		{"negative start", twoJoined, -1, 2},
		{"finish past pair", twoJoined, 1, 3},
		{"start past end", complete6, 7, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			_, _, err := g.ShortestPath(tc.start, tc.finish)

			assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
		})
	}
}

func TestAllShortestPaths(t *testing.T) {
	testCases := []struct {
		name     string
		matrix   [][]int
		expected [][]int
	}{
		{"single vertex", [][]int{{0}}, [][]int{{0}}},
		{"single vertex loop", [][]int{{7}}, [][]int{{0}}},
		{"two apart", twoApart, [][]int{{0, -1}, {-1, 0}}},
		{"two joined", twoJoined, [][]int{{0, 1}, {1, 0}}},
		{"loop is ignored", twoLoop, [][]int{{0, 2}, {2, 0}}},
		{"isolated vertex", oneOff, [][]int{
			{0, 1, 1, 1, -1},
			{1, 0, 1, 1, -1},
			{1, 1, 0, 1, -1},
			{1, 1, 1, 0, -1},
			{-1, -1, -1, -1, 0},
		}},
		{"all connected", complete6, complete6},
		{"complete", complete4, complete4},
		{"tree", tree12, [][]int{
			{0, 1, 1, 2, 2, 2, 2, 3, 3, 4, 4, 4},
			{1, 0, 2, 1, 1, 3, 3, 2, 2, 3, 3, 3},
			{1, 2, 0, 3, 3, 1, 1, 4, 4, 5, 5, 5},
			{2, 1, 3, 0, 2, 4, 4, 1, 1, 2, 2, 2},
			{2, 1, 3, 2, 0, 4, 4, 3, 3, 4, 4, 4},
			{2, 3, 1, 4, 4, 0, 2, 5, 5, 6, 6, 6},
			{2, 3, 1, 4, 4, 2, 0, 5, 5, 6, 6, 6},
			{3, 2, 4, 1, 3, 5, 5, 0, 2, 3, 3, 3},
			{3, 2, 4, 1, 3, 5, 5, 2, 0, 1, 1, 1},
			{4, 3, 5, 2, 4, 6, 6, 3, 1, 0, 2, 2},
			{4, 3, 5, 2, 4, 6, 6, 3, 1, 2, 0, 2},
			{4, 3, 5, 2, 4, 6, 6, 3, 1, 2, 2, 0},
		}},
		{"line", line5, [][]int{
			{0, 1, 2, 3, 4},
			{1, 0, 1, 2, 3},
			{2, 1, 0, 1, 2},
			{3, 2, 1, 0, 1},
			{4, 3, 2, 1, 0},
		}},
		{"star", star5, [][]int{
			{0, 1, 1, 1, 1},
			{1, 0, 2, 2, 2},
			{1, 2, 0, 2, 2},
			{1, 2, 2, 0, 2},
			{1, 2, 2, 2, 0},
		}},
		{"one way", oneWay, [][]int{
			{0, 10, 2, 11}, {-1, 0, -1, 1}, {-1, -1, 0, 20}, {-1, -1, -1, 0},
		}},
		{"directed", directed, [][]int{
			{0, 10, 2, 11}, {2, 0, 4, 1}, {21, 31, 0, 20}, {1, 11, 3, 0},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			assert.Equal(t, tc.expected, g.AllShortestPaths())
		})
	}
}

func TestAllShortestPaths_AgreesWithShortestPath(t *testing.T) {
	g := mustNew(t, weighted11)

	all := g.AllShortestPaths()
	for start := 1; start <= g.VertexCount(); start++ {
		for finish := 1; finish <= g.VertexCount(); finish++ {
			distance, _, err := g.ShortestPath(start, finish)
			require.NoError(t, err)
			assert.Equal(t, distance, all[start-1][finish-1], "from %d to %d", start, finish)
		}
	}
}

var (
	primInput = [][]int{
		{0, 9, 1, 8, 1}, {9, 0, 1, 0, 0}, {1, 1, 0, 2, 1}, {8, 0, 2, 0, 9}, {1, 0, 1, 9, 0},
	}
	primInputWithLoops = [][]int{
		{1, 9, 1, 8, 1}, {9, 0, 1, 0, 0}, {1, 1, 0, 2, 1}, {8, 0, 2, 7, 9}, {1, 0, 1, 9, 0},
	}
	primTree = [][]int{
		{0, 0, 1, 0, 1}, {0, 0, 1, 0, 0}, {1, 1, 0, 2, 0}, {0, 0, 2, 0, 0}, {1, 0, 0, 0, 0},
	}
)

func TestLeastSpanningTree(t *testing.T) {
	testCases := []struct {
		name     string
		matrix   [][]int
		expected [][]int
	}{
		{"weighted", primInput, primTree},
		{"loops are ignored", primInputWithLoops, primTree},
		{"line is its own tree", line5, line5},
		{"star is its own tree", star5, star5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			tree, err := g.LeastSpanningTree()

			require.NoError(t, err)
			assert.Equal(t, tc.expected, tree)
		})
	}
}

func TestLeastSpanningTree_HasOneEdgeFewerThanVertices(t *testing.T) {
	g := mustNew(t, weighted11)

	tree, err := g.LeastSpanningTree()
	require.NoError(t, err)

	edges := 0
	for i := range tree {
		for j := i + 1; j < len(tree); j++ {
			if tree[i][j] != 0 {
				edges++
			}
		}
	}
	assert.Equal(t, g.VertexCount()-1, edges)

	spanning, err := graph.New(tree)
	require.NoError(t, err)
	reached, err := spanning.BreadthFirstSearch(1)
	require.NoError(t, err)
	assert.Len(t, reached, g.VertexCount())
}

func TestLeastSpanningTree_Rejects(t *testing.T) {
	testCases := []struct {
		name   string
		matrix [][]int
	}{
		{"directed", directed},
		{"disconnected", [][]int{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}},
		{"empty", [][]int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.matrix)

			_, err := g.LeastSpanningTree()

			assert.ErrorIs(t, err, graph.ErrNotSpanning)
		})
	}
}
