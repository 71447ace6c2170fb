package cliutil

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetString resolves a string setting. A flag given on the command line
// wins; otherwise viper's value is used, which covers the config file and
// RINGCTL_-prefixed environment variables. The flag default is the last
// resort.
func GetString(cmd *cobra.Command, flag string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}

	if value := viper.GetString(flag); value != "" {
		return value
	}

	value, _ := cmd.Flags().GetString(flag)
	return value
}
