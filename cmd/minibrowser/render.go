package main

import (
	"github.com/spf13/cobra"
	"minibrowser/internal/render"
)

func newRenderCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "render <url>",
		Short: "Fetch a page and display it in a native window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := fetchAndParse(args[0])
			if err != nil {
				return err
			}

			renderer := render.NewWebviewRenderer(args[0], debug)
			if err := renderer.Render(window); err != nil {
				return err
			}
			renderer.Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "open the webview's developer tools")
	return cmd
}
