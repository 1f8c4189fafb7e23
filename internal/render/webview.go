// Package render is the windowing/drawing collaborator spec.md §6 places
// outside the browser core: it takes a finished dom.Window and displays it,
// with no layout or paint logic of its own. Adapted from toybrowser's
// internal/render/webview.go, rewired from that package's own ad hoc
// html.Node/html.Document shape onto this module's dom.Window/dom.Node.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/webview/webview"
	"minibrowser/internal/core"
	"minibrowser/internal/dom"
)

// WebviewRenderer displays a dom.Window in a native window by serializing
// it back into an HTML string and handing that to the OS webview control.
type WebviewRenderer struct {
	webview webview.WebView
}

// NewWebviewRenderer creates a WebviewRenderer. debug enables the webview's
// developer tools.
func NewWebviewRenderer(title string, debug bool) *WebviewRenderer {
	w := webview.New(debug)
	w.SetTitle(title)
	w.SetSize(800, 600, webview.HintNone)
	return &WebviewRenderer{webview: w}
}

// Render walks window's document tree, serializes it to HTML, and sets it
// as the webview's contents.
func (r *WebviewRenderer) Render(window *dom.Window) error {
	html, err := SerializeWindow(window)
	if err != nil {
		return err
	}
	r.webview.SetHTML(html)
	return nil
}

// SerializeWindow walks window's document tree and renders it back into an
// HTML string. Split out from Render so the serialization logic is
// testable without a live webview control.
func SerializeWindow(window *dom.Window) (string, error) {
	doc := window.Document()
	if doc == nil {
		return "", core.NewInvalidUIError("window has no document")
	}
	var sb strings.Builder
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		generateHTML(&sb, child)
	}
	return sb.String(), nil
}

// Run starts the webview event loop. It blocks until the window is closed.
func (r *WebviewRenderer) Run() {
	r.webview.Run()
}

// InjectJavaScript evaluates js in the webview's page context.
func (r *WebviewRenderer) InjectJavaScript(js string) {
	r.webview.Eval(js)
}

// Bind exposes a Go function to JavaScript running in the webview under
// name.
func (r *WebviewRenderer) Bind(name string, fn interface{}) error {
	if err := r.webview.Bind(name, fn); err != nil {
		return core.NewInvalidUIError("binding %s: %v", name, err)
	}
	return nil
}

func generateHTML(sb *strings.Builder, node *dom.Node) {
	switch {
	case node.Kind.IsElement():
		element := node.Kind.Element()
		tag := element.Kind().String()
		sb.WriteString("<")
		sb.WriteString(tag)
		for _, attr := range element.Attributes() {
			fmt.Fprintf(sb, " %s=%q", attr.Name, attr.Value)
		}
		sb.WriteString(">")

		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			generateHTML(sb, child)
		}

		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">")

	case node.Kind.IsText():
		sb.WriteString(template.HTMLEscapeString(node.Kind.Text()))
	}
}
