package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"minibrowser/internal/dom"
	"minibrowser/internal/html"
	"minibrowser/internal/httpclient"
)

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a page and print its parsed DOM tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := fetchAndParse(args[0])
			if err != nil {
				return err
			}
			printNode(window.Document(), 0)
			return nil
		},
	}
}

func fetchAndParse(rawURL string) (*dom.Window, error) {
	host, port, path, err := splitURL(rawURL)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetching page", "host", host, "port", port, "path", path)

	resp, err := httpclient.NewClient().Get(host, port, path)
	if err != nil {
		return nil, err
	}

	tokenizer := html.NewTokenizer(resp.Body)
	return html.NewParser(tokenizer).ConstructTree(), nil
}

func splitURL(rawURL string) (host string, port uint16, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, "", fmt.Errorf("parsing url %q: %w", rawURL, err)
	}

	host = u.Hostname()
	path = u.Path
	if path == "" {
		path = "/"
	}

	if p := u.Port(); p != "" {
		parsed, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return "", 0, "", fmt.Errorf("parsing port %q: %w", p, err)
		}
		port = uint16(parsed)
	} else if u.Scheme == "https" {
		port = 443
	} else {
		port = 80
	}

	return host, port, path, nil
}

func printNode(node *dom.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	if node.Kind.IsText() {
		fmt.Printf("%stext: %s\n", indent, node.Kind.Text())
		return
	}

	if node.Kind.IsDocument() {
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			printNode(child, depth)
		}
		return
	}

	element := node.Kind.Element()
	fmt.Printf("%s<%s", indent, element.Kind().String())
	for _, attr := range element.Attributes() {
		fmt.Printf(" %s=%q", attr.Name, attr.Value)
	}
	fmt.Println(">")

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		printNode(child, depth+1)
	}
}
