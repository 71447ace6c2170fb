package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ringlist/ringlist/cmd/ringctl/root/config"
	"github.com/ringlist/ringlist/cmd/ringctl/root/graph"
	"github.com/ringlist/ringlist/cmd/ringctl/root/list"
	"github.com/ringlist/ringlist/cmd/ringctl/root/queue"
	"github.com/ringlist/ringlist/cmd/ringctl/root/stack"
	"github.com/ringlist/ringlist/cmd/ringctl/root/version"
	"github.com/ringlist/ringlist/internal/cliutil"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ringctl <command> <subcommand> [flags]",
		Short: "Ring list container toolkit",
		Long:  `Run list, queue, stack and graph traversal operations from the command line.`,
		Example: heredoc.Doc(`
			$ ringctl list sort 3 1 2
			$ ringctl list merge --with 2,4 1 3 5
			$ ringctl graph bfs --file graph.txt --start 1
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(cliutil.GetString(cmd, "log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(list.NewListCmd())
	cmd.AddCommand(queue.NewQueueCmd())
	cmd.AddCommand(stack.NewStackCmd())
	cmd.AddCommand(graph.NewGraphCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
