package stack

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ringlist/ringlist/internal/cliutil"
	"github.com/ringlist/ringlist/pkg/collections"
)

func NewStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack <values...>",
		Short: "Push values onto a stack and drain it",
		Long:  `Push every value onto a LIFO stack, then pop until empty and print the values in pop order.`,
		Example: heredoc.Doc(`
			$ ringctl stack 1 2 3
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cliutil.ParseInts(args)
			if err != nil {
				return err
			}

			s := &collections.Stack[int]{}
			for _, v := range values {
				s.Push(v)
			}
			log.Debug("Filled stack", "size", s.Len())

			popped := make([]int, 0, s.Len())
			for !s.Empty() {
				popped = append(popped, s.Top())
				s.Pop()
			}

			return cliutil.HandleOutput(cmd, popped)
		},
	}
	cliutil.AddOutputFlags(cmd)

	return cmd
}
