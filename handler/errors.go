package handler

import (
	"fmt"
	"net/http"
)

// Kind classifies the failures the proxy answers itself.
type Kind int

const (
	// KindMethod is a request with a method other than POST.
	KindMethod Kind = iota
	// KindCredential means no credential variable is set.
	KindCredential
	// KindProxy covers body parsing and transport failures.
	KindProxy
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindCredential:
		return "credential"
	case KindProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Error is a failure reported to the caller as {"error": Message}.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errMethod() *Error {
	return &Error{Kind: KindMethod, Status: http.StatusMethodNotAllowed, Message: "Only POST"}
}

func errMissingCredential(name string) *Error {
	return &Error{Kind: KindCredential, Status: http.StatusInternalServerError, Message: name + " is missing"}
}

func errProxy(err error) *Error {
	return &Error{
		Kind:    KindProxy,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("proxy error: %v", err),
		Err:     err,
	}
}
