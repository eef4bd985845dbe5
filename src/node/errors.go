package node

import (
	"fmt"

	"github.com/gustnet/gust/src/wire"
)

// DispatchErrType ...
type DispatchErrType uint32

const (
	// HandlerNotFound - the node is initialized but no handler is registered
	// for the message's kind.
	HandlerNotFound DispatchErrType = iota
	// UnexpectedBody - a handler was invoked with a body not matching its own
	// registration. Unreachable through normal dispatch; hitting it signals a
	// wiring bug in the handler table.
	UnexpectedBody
	// NotInitialized - a non-init message arrived before initialization.
	NotInitialized
	// AlreadyInitialized - a second init message arrived.
	AlreadyInitialized
)

// DispatchErr is the error reported when Process cannot run a handler, or
// when a handler rejects the body it was handed. Every DispatchErr is terminal
// for the single message being processed, never for the process.
type DispatchErr struct {
	errType  DispatchErrType
	kind     wire.Kind
	expected wire.Kind
}

// NewDispatchErr ...
func NewDispatchErr(errType DispatchErrType, kind wire.Kind) DispatchErr {
	return DispatchErr{
		errType: errType,
		kind:    kind,
	}
}

// NewUnexpectedBodyErr builds the UnexpectedBody variant, recording both the
// kind that was found and the kind the handler was registered for.
func NewUnexpectedBodyErr(found, expected wire.Kind) DispatchErr {
	return DispatchErr{
		errType:  UnexpectedBody,
		kind:     found,
		expected: expected,
	}
}

// Error ...
func (e DispatchErr) Error() string {
	switch e.errType {
	case HandlerNotFound:
		return fmt.Sprintf("couldn't find a handler for %q messages", e.kind)
	case UnexpectedBody:
		return fmt.Sprintf("expected %q message but found %q", e.expected, e.kind)
	case NotInitialized:
		return "node is not initialized yet"
	case AlreadyInitialized:
		return "node is already initialized"
	}
	return "unknown dispatch error"
}

// IsDispatch checks that an error is of type DispatchErr and that its code
// matches the provided DispatchErrType.
func IsDispatch(err error, t DispatchErrType) bool {
	dispatchErr, ok := err.(DispatchErr)
	return ok && dispatchErr.errType == t
}
