package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"minibrowser/internal/js"
)

func newJSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "js <file>",
		Short: "Run a script through the minimal arithmetic JS engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}

			program := js.NewParser(js.NewLexer(string(data))).ParseProgram()
			runtime := js.NewRuntime()
			for _, stmt := range program.Body() {
				if value, ok := runtime.Evaluate(stmt); ok {
					fmt.Println(value.Number)
				}
			}
			return nil
		},
	}
}
