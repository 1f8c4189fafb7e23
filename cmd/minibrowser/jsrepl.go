package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"minibrowser/internal/jsext"
)

// newJSReplCmd exposes the supplemental jsext engine — identifiers,
// strings, booleans, let/fn/if/while/return, arrays, closures — as an
// interactive prompt. It is deliberately the only entry point into jsext,
// kept separate from the arithmetic-only `js` subcommand and its engine.
func newJSReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jsrepl",
		Short: "Start an interactive prompt for the extended JavaScript engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runJSRepl(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

func runJSRepl(in io.Reader, out io.Writer) {
	interp := jsext.NewInterpreter()
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, ">> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Fprint(out, ">> ")
			continue
		}
		if result := interp.Run(line); result != nil {
			fmt.Fprintln(out, result.Inspect())
		}
		fmt.Fprint(out, ">> ")
	}
}
