// Package core holds the error taxonomy the collaborator packages
// (httpclient, render) use to report failures the same way. The parsing
// pipeline (html, css, js) does not use it; see Kind.
package core

import "fmt"

// Kind distinguishes the ways this module reports failure. Network and
// InvalidUI are raised by external collaborators (the HTTP client and the
// rendering surface); Other is a catch-all. The core itself reports
// unsupported input by panicking (the closed ElementKind set in dom.go and
// the unimplemented-character case in css/token.go), not through this type,
// so there is no UnexpectedInput kind here.
type Kind int

const (
	Other Kind = iota
	Network
	InvalidUI
)

func (k Kind) String() string {
	switch k {
	case Network:
		return "Network"
	case InvalidUI:
		return "InvalidUI"
	default:
		return "Other"
	}
}

// Error is the single error type returned across package boundaries in this
// module. It carries a Kind so callers can branch on failure category with
// errors.As instead of string matching.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNetworkError(format string, args ...interface{}) *Error {
	return &Error{Kind: Network, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidUIError(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidUI, Message: fmt.Sprintf(format, args...)}
}
