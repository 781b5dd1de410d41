// Package errors provides structured error types for codeview.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindConfig
	KindClipboard
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for codeview.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Fetch errors

// FetchStatus reports a non-2xx response. 404 means the server does not know
// the session and is KindNotFound; every other status is KindNetwork.
func FetchStatus(sessionID string, status int) error {
	kind := KindNetwork
	if status == http.StatusNotFound {
		kind = KindNotFound
	}
	return E(Op("codeclient.ListFiles"), kind, fmt.Sprintf("fetching files for session %s: unexpected status %d", sessionID, status))
}

func FetchFailed(sessionID string, err error) error {
	return E(Op("codeclient.ListFiles"), KindNetwork, fmt.Sprintf("fetching files for session %s", sessionID), err)
}

func FetchTimeout(sessionID string, err error) error {
	return E(Op("codeclient.ListFiles"), KindTimeout, fmt.Sprintf("fetching files for session %s", sessionID), err)
}

func FetchDecodeFailed(sessionID string, err error) error {
	return E(Op("codeclient.ListFiles"), KindInvalid, fmt.Sprintf("decoding files for session %s", sessionID), err)
}

func SessionRequired() error {
	return E(Op("codeclient.ListFiles"), KindInvalid, "session id is required")
}

// Clipboard errors
func ClipboardWriteFailed(name string, err error) error {
	return E(Op("clipboard.WriteText"), KindClipboard, fmt.Sprintf("failed to copy %s", name), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
