package graph

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ringlist/ringlist/internal/cliutil"
	"github.com/ringlist/ringlist/internal/graph"
)

func NewGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <command>",
		Short: "Graph traversal commands",
		Long:  `Load a graph from an adjacency matrix file and traverse or export it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTraversalCmd("bfs", "Breadth-first traversal", (*graph.Graph).BreadthFirstSearch))
	cmd.AddCommand(newTraversalCmd("dfs", "Depth-first traversal", (*graph.Graph).DepthFirstSearch))
	cmd.AddCommand(newDijkstraCmd())
	cmd.AddCommand(newMatrixCmd("floyd", "Shortest distances between all vertices",
		func(g *graph.Graph) ([][]int, error) { return g.AllShortestPaths(), nil }))
	cmd.AddCommand(newMatrixCmd("prim", "Minimum spanning tree as an adjacency matrix",
		(*graph.Graph).LeastSpanningTree))
	cmd.AddCommand(newDotCmd())

	return cmd
}

func newTraversalCmd(name, short string, traverse func(*graph.Graph, int) ([]int, error)) *cobra.Command {
	var filePath string
	var start int

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Example: heredoc.Doc(fmt.Sprintf(`
			$ ringctl graph %s --file graph.txt --start 1
		`, name)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to load graph: %w", err)
			}
			log.Debug("Loaded graph", "file", filePath, "vertices", g.VertexCount())

			order, err := traverse(g, start)
			if err != nil {
				return err
			}

			return cliutil.HandleOutput(cmd, order)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the adjacency matrix file (required)")
	cmd.Flags().IntVarP(&start, "start", "s", 1, "Vertex to start from")
	cmd.MarkFlagRequired("file")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

// ShortestPath is the output of the dijkstra command.
type ShortestPath struct {
	Distance int   `json:"distance" yaml:"distance"`
	Path     []int `json:"path" yaml:"path"`
}

func newDijkstraCmd() *cobra.Command {
	var filePath string
	var start, finish int

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest path between two vertices",
		Example: heredoc.Doc(`
			$ ringctl graph dijkstra --file graph.txt --start 1 --finish 4
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to load graph: %w", err)
			}

			distance, path, err := g.ShortestPath(start, finish)
			if err != nil {
				return err
			}
			log.Debug("Found shortest path", "start", start, "finish", finish, "distance", distance)

			return cliutil.HandleOutput(cmd, ShortestPath{Distance: distance, Path: path})
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the adjacency matrix file (required)")
	cmd.Flags().IntVarP(&start, "start", "s", 1, "Vertex to start from")
	cmd.Flags().IntVarP(&finish, "finish", "t", 0, "Vertex to reach (required)")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("finish")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

func newMatrixCmd(name, short string, compute func(*graph.Graph) ([][]int, error)) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Example: heredoc.Doc(fmt.Sprintf(`
			$ ringctl graph %s --file graph.txt
		`, name)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to load graph: %w", err)
			}

			matrix, err := compute(g)
			if err != nil {
				return err
			}
			log.Debug("Computed matrix", "operation", name, "vertices", g.VertexCount())

			return cliutil.HandleOutput(cmd, matrix)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the adjacency matrix file (required)")
	cmd.MarkFlagRequired("file")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

func newDotCmd() *cobra.Command {
	var filePath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a graph in Graphviz DOT format",
		Example: heredoc.Doc(`
			$ ringctl graph dot --file graph.txt --out graph.dot
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to load graph: %w", err)
			}

			if outPath == "" {
				return g.WriteDOT(cmd.OutOrStdout())
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			if err := g.WriteDOT(f); err != nil {
				return fmt.Errorf("failed to write DOT file: %w", err)
			}
			log.Info("Exported graph", "file", outPath, "vertices", g.VertexCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the adjacency matrix file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default is standard output)")
	cmd.MarkFlagRequired("file")

	return cmd
}
