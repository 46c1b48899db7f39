package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin façade over cockroachdb/errors so the rest of the codebase never
// imports it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel to err so errors.Is(err, markErr) holds while the
// original cause and its stack stay intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
