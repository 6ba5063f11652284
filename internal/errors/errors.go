// Package errors is the single error import for the repo: tree inspection
// comes from the standard library, annotation from pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join

	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// IsAny reports whether err matches one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

// Mark tags cause with a sentinel and records a stack. Both stay reachable
// through Is and As, so a handler can map the sentinel while logs keep the
// driver error. A nil cause yields nil.
func Mark(cause, sentinel error) error {
	if cause == nil {
		return nil
	}

	return pkgerrors.WithStack(stderrors.Join(sentinel, cause))
}
