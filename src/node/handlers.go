package node

import (
	"github.com/gustnet/gust/src/wire"
)

// EchoHandler replies to an echo message with an echo_ok carrying the same
// payload back to the sender.
func EchoHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeEcho {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindEcho)
	}

	body := wire.NewEchoOk(msg.Body.MsgID, n.GenMsgID(), msg.Body.Echo)
	return []wire.Message{n.Reply(msg.Src, body)}, nil
}

// GenerateHandler replies to a generate message with a freshly generated
// unique id.
func GenerateHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeGenerate {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindGenerate)
	}

	id, err := n.GenUniqueID()
	if err != nil {
		return nil, err
	}

	body := wire.NewGenerateOk(msg.Body.MsgID, n.GenMsgID(), id)
	return []wire.Message{n.Reply(msg.Src, body)}, nil
}
