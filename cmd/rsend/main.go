package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "rsend",
		Short:        "Find the R statement around a line",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <dir>/.rsend.yaml)")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newExtentCmd(opts))
	rootCmd.AddCommand(newStatementsCmd(opts))

	return rootCmd
}
