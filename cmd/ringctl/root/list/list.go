package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ringlist/ringlist/internal/cliutil"
	"github.com/ringlist/ringlist/pkg/collections"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <command>",
		Short: "List algorithms",
		Long:  `Build a list from integer arguments and run one of its algorithms on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTransformCmd("sort", "Sort values in ascending order", collections.Sort[int]))
	cmd.AddCommand(newTransformCmd("unique", "Remove consecutive duplicates", collections.Unique[int]))
	cmd.AddCommand(newTransformCmd("reverse", "Reverse the order of values", (*collections.List[int]).Reverse))
	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newSpliceCmd())

	return cmd
}

// newTransformCmd returns a command applying fn to a list of its arguments.
func newTransformCmd(name, short string, fn func(*collections.List[int])) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <values...>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cliutil.ParseInts(args)
			if err != nil {
				return err
			}

			l := collections.NewOf(values...)
			fn(l)
			log.Debug("Applied list operation", "operation", name, "size", l.Len())

			return cliutil.HandleOutput(cmd, l.Values())
		},
	}
	cliutil.AddOutputFlags(cmd)

	return cmd
}

func newMergeCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:   "merge <values...>",
		Short: "Merge two lists into one sorted list",
		Long:  `Sort the argument values and the --with values, then merge the second list into the first.`,
		Example: heredoc.Doc(`
			$ ringctl list merge --with 2,4 1 3 5
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cliutil.ParseInts(args)
			if err != nil {
				return err
			}
			others, err := cliutil.ParseIntList(with)
			if err != nil {
				return fmt.Errorf("failed to parse --with: %w", err)
			}

			l := collections.NewOf(values...)
			other := collections.NewOf(others...)
			collections.Sort(l)
			collections.Sort(other)
			collections.Merge(l, other)
			log.Debug("Merged lists", "size", l.Len())

			return cliutil.HandleOutput(cmd, l.Values())
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "Comma separated values to merge in")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

func newSpliceCmd() *cobra.Command {
	var with string
	var at int

	cmd := &cobra.Command{
		Use:   "splice <values...>",
		Short: "Move another list into this one at an index",
		Example: heredoc.Doc(`
			$ ringctl list splice --with 2,3 --at 1 1 4
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cliutil.ParseInts(args)
			if err != nil {
				return err
			}
			others, err := cliutil.ParseIntList(with)
			if err != nil {
				return fmt.Errorf("failed to parse --with: %w", err)
			}

			l := collections.NewOf(values...)
			if at < 0 || at > l.Len() {
				return fmt.Errorf("index %d out of range 0..%d", at, l.Len())
			}

			pos := l.Begin()
			for range at {
				pos = pos.Next()
			}
			l.Splice(pos, collections.NewOf(others...))
			log.Debug("Spliced lists", "index", at, "size", l.Len())

			return cliutil.HandleOutput(cmd, l.Values())
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "Comma separated values to splice in")
	cmd.Flags().IntVar(&at, "at", 0, "Index to splice before")
	cliutil.AddOutputFlags(cmd)

	return cmd
}
