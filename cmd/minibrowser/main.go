package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"log/slog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "minibrowser",
		Short: "A minimal educational browser engine",
		Long:  "minibrowser tokenizes and parses HTML into a DOM, tokenizes CSS, and runs a small JavaScript subset.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFetchCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCSSCmd())
	root.AddCommand(newJSCmd())
	root.AddCommand(newJSReplCmd())

	return root
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
