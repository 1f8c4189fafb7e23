package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"minibrowser/internal/css"
)

func newCSSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "css <file>",
		Short: "Tokenize a stylesheet and print its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}

			t := css.NewTokenizer(string(data))
			for {
				tok, ok := t.Next()
				if !ok {
					break
				}
				fmt.Println(tok)
			}
			return nil
		},
	}
}
