package wire

import "github.com/gustnet/gust/src/peers"

// Literal type tags of every body variant.
const (
	TypeInit        = "init"
	TypeInitOk      = "init_ok"
	TypeEcho        = "echo"
	TypeEchoOk      = "echo_ok"
	TypeGenerate    = "generate"
	TypeGenerateOk  = "generate_ok"
	TypeBroadcast   = "broadcast"
	TypeBroadcastOk = "broadcast_ok"
	TypeRead        = "read"
	TypeReadOk      = "read_ok"
	TypeTopology    = "topology"
	TypeTopologyOk  = "topology_ok"
	TypeError       = "error"
)

// Message is the envelope wrapping every record on the wire. Message identity
// is structural; there is no message-level id outside the body.
type Message struct {
	Src  string `json:"src"`
	Dest string `json:"dest"`
	Body Body   `json:"body"`
}

// Body is the tagged payload of a message. The variant set is closed: Type
// always holds one of the Type* tags, and only the fields belonging to that
// variant are populated. Message and Messages are pointers so that a broadcast
// of value 0 and an empty read snapshot still serialize their fields.
type Body struct {
	Type      string         `json:"type"`
	InReplyTo uint32         `json:"in_reply_to,omitempty"`
	MsgID     uint32         `json:"msg_id,omitempty"`
	NodeID    string         `json:"node_id,omitempty"`
	NodeIDs   []string       `json:"node_ids,omitempty"`
	Echo      string         `json:"echo,omitempty"`
	ID        string         `json:"id,omitempty"`
	Message   *uint64        `json:"message,omitempty"`
	Messages  *[]uint64      `json:"messages,omitempty"`
	Topology  peers.Topology `json:"topology,omitempty"`
	Code      uint32         `json:"code,omitempty"`
	Text      string         `json:"text,omitempty"`
}

// Kind maps the body's type tag to its dispatch Kind. Reply variants and
// unknown tags yield ErrKeyNotFound; they are never dispatched.
func (b Body) Kind() (Kind, error) {
	switch b.Type {
	case TypeInit:
		return KindInit, nil
	case TypeEcho:
		return KindEcho, nil
	case TypeGenerate:
		return KindGenerate, nil
	case TypeBroadcast:
		return KindBroadcast, nil
	case TypeRead:
		return KindRead, nil
	case TypeTopology:
		return KindTopology, nil
	default:
		return KindInvalid, ErrKeyNotFound
	}
}

// NewInitOk builds the reply to an init message. It carries no msg_id.
func NewInitOk(inReplyTo uint32) Body {
	return Body{
		Type:      TypeInitOk,
		InReplyTo: inReplyTo,
	}
}

// NewEchoOk builds the reply to an echo message.
func NewEchoOk(inReplyTo, msgID uint32, echo string) Body {
	return Body{
		Type:      TypeEchoOk,
		InReplyTo: inReplyTo,
		MsgID:     msgID,
		Echo:      echo,
	}
}

// NewGenerateOk builds the reply to a generate message.
func NewGenerateOk(inReplyTo, msgID uint32, id string) Body {
	return Body{
		Type:      TypeGenerateOk,
		InReplyTo: inReplyTo,
		MsgID:     msgID,
		ID:        id,
	}
}

// NewBroadcast builds a broadcast request, used when flooding a value to
// neighbors.
func NewBroadcast(msgID uint32, value uint64) Body {
	return Body{
		Type:    TypeBroadcast,
		MsgID:   msgID,
		Message: &value,
	}
}

// NewBroadcastOk builds the reply to a broadcast message.
func NewBroadcastOk(inReplyTo, msgID uint32) Body {
	return Body{
		Type:      TypeBroadcastOk,
		InReplyTo: inReplyTo,
		MsgID:     msgID,
	}
}

// NewReadOk builds the reply to a read message. The messages field is always
// present, even when no values have been accepted yet.
func NewReadOk(inReplyTo, msgID uint32, values []uint64) Body {
	if values == nil {
		values = []uint64{}
	}
	return Body{
		Type:      TypeReadOk,
		InReplyTo: inReplyTo,
		MsgID:     msgID,
		Messages:  &values,
	}
}

// NewTopologyOk builds the reply to a topology message.
func NewTopologyOk(inReplyTo, msgID uint32) Body {
	return Body{
		Type:      TypeTopologyOk,
		InReplyTo: inReplyTo,
		MsgID:     msgID,
	}
}

// NewError builds a protocol-level error report. The core never produces it on
// its own; the variant exists for forward compatibility.
func NewError(inReplyTo, code uint32, text string) Body {
	return Body{
		Type:      TypeError,
		InReplyTo: inReplyTo,
		Code:      code,
		Text:      text,
	}
}
