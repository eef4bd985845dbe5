package node

import (
	"github.com/gustnet/gust/src/peers"
	"github.com/gustnet/gust/src/wire"
	"github.com/sirupsen/logrus"
)

// SetNeighbors replaces the set of peers this node floods broadcast values to.
func (n *Node) SetNeighbors(neighbors []string) {
	n.neighbors = neighbors
}

// Neighbors returns the current neighbor list.
func (n *Node) Neighbors() []string {
	return n.neighbors
}

// SeenValues returns a snapshot of every distinct broadcast value the node has
// accepted, in first-seen order.
func (n *Node) SeenValues() []uint64 {
	values := make([]uint64, len(n.seen))
	copy(values, n.seen)
	return values
}

// ingestValue records a broadcast value and returns the flood messages for it.
// A value already seen is an idempotent no-op producing no traffic; this is
// what terminates the flood. A new value is appended to the dedup log and
// forwarded to every neighbor except the sender it arrived from, each copy
// carrying a fresh msg_id.
func (n *Node) ingestValue(sender string, value uint64) []wire.Message {
	if _, ok := n.seenIndex[value]; ok {
		return nil
	}
	n.seenIndex[value] = struct{}{}
	n.seen = append(n.seen, value)

	var floods []wire.Message
	for _, neighbor := range peers.Exclude(n.neighbors, sender) {
		body := wire.NewBroadcast(n.GenMsgID(), value)
		floods = append(floods, n.Reply(neighbor, body))
	}

	n.logger.WithFields(logrus.Fields{
		"value":  value,
		"fanout": len(floods),
	}).Debug("Accepted broadcast value")

	return floods
}

// BroadcastHandler ingests a broadcast value and replies broadcast_ok to the
// sender after any flood messages. The ok reply is returned for every
// broadcast received, seen or not.
func BroadcastHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeBroadcast {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindBroadcast)
	}

	var value uint64
	if msg.Body.Message != nil {
		value = *msg.Body.Message
	}

	replies := n.ingestValue(msg.Src, value)
	body := wire.NewBroadcastOk(msg.Body.MsgID, n.GenMsgID())
	replies = append(replies, n.Reply(msg.Src, body))
	return replies, nil
}

// ReadHandler replies with a snapshot of the node's dedup log in insertion
// order.
func ReadHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeRead {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindRead)
	}

	body := wire.NewReadOk(msg.Body.MsgID, n.GenMsgID(), n.SeenValues())
	return []wire.Message{n.Reply(msg.Src, body)}, nil
}

// TopologyHandler sets the node's neighbor list from its own row of the
// supplied topology map. A node absent from the map gets no neighbors. Rows
// for other nodes are ignored.
func TopologyHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeTopology {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindTopology)
	}

	n.SetNeighbors(msg.Body.Topology.NeighborsOf(n.ID()))

	n.logger.WithFields(logrus.Fields{
		"neighbors": len(n.neighbors),
	}).Debug("Topology set")

	body := wire.NewTopologyOk(msg.Body.MsgID, n.GenMsgID())
	return []wire.Message{n.Reply(msg.Src, body)}, nil
}
