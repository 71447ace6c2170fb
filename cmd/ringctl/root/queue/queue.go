package queue

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ringlist/ringlist/internal/cliutil"
	"github.com/ringlist/ringlist/pkg/collections"
)

func NewQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue <values...>",
		Short: "Push values onto a queue and drain it",
		Long:  `Push every value onto a FIFO queue, then pop until empty and print the values in pop order.`,
		Example: heredoc.Doc(`
			$ ringctl queue 1 2 3
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cliutil.ParseInts(args)
			if err != nil {
				return err
			}

			q := &collections.Queue[int]{}
			for _, v := range values {
				q.Push(v)
			}
			log.Debug("Filled queue", "size", q.Len())

			popped := make([]int, 0, q.Len())
			for {
				v, err := q.Dequeue()
				if err != nil {
					break
				}
				popped = append(popped, v)
			}

			return cliutil.HandleOutput(cmd, popped)
		},
	}
	cliutil.AddOutputFlags(cmd)

	return cmd
}
