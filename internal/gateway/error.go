package gateway

import (
	"context"
	"errors"

	"barberbook/internal/pkg/errs"
)

type ErrorKind string

// Gateway-specific error kinds
const (
	KindTransport    ErrorKind = "TRANSPORT"
	KindTimeout      ErrorKind = "TIMEOUT"
	KindRejected     ErrorKind = "REJECTED"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindMalformed    ErrorKind = "MALFORMED_BODY"
)

// Error is a failed call to an external collaborator. ServerMessage carries
// the message body the server returned, when it returned one.
type Error struct {
	Kind          ErrorKind
	ServerMessage string
	msg           string
	err           error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return Error{Kind: kind, msg: msg, err: err}
}

func RejectedErr(msg, serverMessage string) error {
	return Error{Kind: KindRejected, ServerMessage: serverMessage, msg: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsNetwork reports whether the call never produced a usable response, in
// which case callers must leave any cached state untouched.
func IsNetwork(err error) bool {
	return IsKind(err, KindTransport) || IsKind(err, KindTimeout)
}

// ServerMessage extracts the server-provided message, if any.
func ServerMessage(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.ServerMessage
	}
	return ""
}

// KindForErr classifies a low-level request error.
func KindForErr(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}
