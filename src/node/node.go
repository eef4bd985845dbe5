package node

import (
	"github.com/gustnet/gust/src/config"
	"github.com/gustnet/gust/src/node/state"
	"github.com/gustnet/gust/src/wire"
	"github.com/sirupsen/logrus"
)

// HandlerFunc processes one inbound message against the node's mutable state
// and returns the outbound messages it produced. Handlers run with exclusive
// access to the node; Process never overlaps invocations.
type HandlerFunc func(n *Node, msg wire.Message) ([]wire.Message, error)

// Node is one simulated participant in the distributed system. It is logically
// single-threaded: Process handles one message to completion, including every
// state mutation and outbound message construction, before the next is read.
type Node struct {
	state.Manager

	id      string
	peerIDs []string

	// neighbors is the subset of peers this node floods broadcast values to.
	// Empty until a topology message arrives; the default is no neighbors, not
	// all peers.
	neighbors []string

	handlers map[wire.Kind]HandlerFunc

	msgCounter uint32
	uidCounter uint8

	seen      []uint64
	seenIndex map[uint64]struct{}

	logger *logrus.Entry
}

// NewNode instantiates a node with the given workload handlers merged with the
// mandatory built-in init handler. The handler map is copied; registration
// order is irrelevant, only presence matters.
func NewNode(conf *config.Config, handlers map[wire.Kind]HandlerFunc) *Node {
	node := &Node{
		handlers:  make(map[wire.Kind]HandlerFunc, len(handlers)+1),
		seenIndex: make(map[uint64]struct{}),
		logger:    conf.Logger(),
	}

	for kind, handler := range handlers {
		node.handlers[kind] = handler
	}
	if _, ok := node.handlers[wire.KindInit]; !ok {
		node.handlers[wire.KindInit] = InitHandler
	}

	return node
}

// Process dispatches one inbound message to its registered handler and returns
// the outbound messages the handler produced. Before the node is initialized,
// only init messages are admitted; after initialization, a second init is
// rejected. Failures are detected before any state mutation occurs.
func (n *Node) Process(msg wire.Message) ([]wire.Message, error) {
	kind, err := msg.Body.Kind()
	if err != nil {
		return nil, err
	}

	initialized := n.GetState() == state.Initialized
	if !initialized && kind != wire.KindInit {
		return nil, NewDispatchErr(NotInitialized, kind)
	}
	if initialized && kind == wire.KindInit {
		return nil, NewDispatchErr(AlreadyInitialized, kind)
	}

	handler, ok := n.handlers[kind]
	if !ok {
		return nil, NewDispatchErr(HandlerNotFound, kind)
	}

	return handler(n, msg)
}

// ID returns the node's identity, or an empty string if the node is not
// initialized.
func (n *Node) ID() string {
	return n.id
}

// PeerIDs returns the full cluster membership recorded at initialization.
func (n *Node) PeerIDs() []string {
	return n.peerIDs
}

// GenMsgID increments and returns the node's message counter. Ids are unique
// within a node's lifetime and strictly increasing; the first call returns 1.
func (n *Node) GenMsgID() uint32 {
	n.msgCounter++
	return n.msgCounter
}

// Reply builds an outbound envelope addressed to dest. It is the only way
// handlers construct outbound messages: src is always the node's own identity.
func (n *Node) Reply(dest string, body wire.Body) wire.Message {
	return wire.Message{
		Src:  n.ID(),
		Dest: dest,
		Body: body,
	}
}

// init stores the identity and peer list, and moves the node to Initialized so
// that the dispatch gate opens and further init messages are rejected.
func (n *Node) init(nodeID string, nodeIDs []string) {
	n.id = nodeID
	n.peerIDs = nodeIDs
	n.SetState(state.Initialized)
}

// InitHandler is the built-in initialization handler. NewNode registers it for
// init messages unless the application supplied its own.
func InitHandler(n *Node, msg wire.Message) ([]wire.Message, error) {
	if msg.Body.Type != wire.TypeInit {
		return nil, NewUnexpectedBodyErr(kindOf(msg.Body), wire.KindInit)
	}

	n.init(msg.Body.NodeID, msg.Body.NodeIDs)

	n.logger.WithFields(logrus.Fields{
		"node_id": n.id,
		"peers":   len(n.peerIDs),
	}).Debug("Initialized")

	reply := n.Reply(msg.Src, wire.NewInitOk(msg.Body.MsgID))
	return []wire.Message{reply}, nil
}

// kindOf returns the body's kind, mapping undispatchable bodies to
// KindInvalid. Used when reporting unexpected bodies.
func kindOf(body wire.Body) wire.Kind {
	kind, err := body.Kind()
	if err != nil {
		return wire.KindInvalid
	}
	return kind
}
