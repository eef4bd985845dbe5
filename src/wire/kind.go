package wire

import "errors"

// ErrKeyNotFound is returned by Body.Kind when the body carries no
// dispatchable type, either because the type tag is unknown or because it
// names a reply-only variant that is never valid as top-level input.
var ErrKeyNotFound = errors.New("message body carries no dispatchable type")

// Kind identifies the dispatchable class of a message body. Only request
// variants have a Kind; replies are constructed, never dispatched.
type Kind uint32

const (
	// KindInvalid is the zero Kind, used when a body has no dispatchable type.
	KindInvalid Kind = iota

	// KindInit is the cluster initialization request.
	KindInit

	// KindEcho is the echo request.
	KindEcho

	// KindGenerate is the unique-id generation request.
	KindGenerate

	// KindBroadcast is the value-broadcast request.
	KindBroadcast

	// KindRead is the request for the node's accepted broadcast values.
	KindRead

	// KindTopology is the neighbor-assignment request.
	KindTopology
)

// String returns the wire tag of the Kind's request variant.
func (k Kind) String() string {
	switch k {
	case KindInit:
		return TypeInit
	case KindEcho:
		return TypeEcho
	case KindGenerate:
		return TypeGenerate
	case KindBroadcast:
		return TypeBroadcast
	case KindRead:
		return TypeRead
	case KindTopology:
		return TypeTopology
	default:
		return "invalid"
	}
}
