package node

import (
	"reflect"
	"testing"

	"github.com/gustnet/gust/src/config"
	"github.com/gustnet/gust/src/wire"
)

func initMessage() wire.Message {
	return wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{
			Type:    wire.TypeInit,
			MsgID:   1,
			NodeID:  "n1",
			NodeIDs: []string{"n1", "n2", "n3"},
		},
	}
}

func initedNode(t *testing.T, handlers map[wire.Kind]HandlerFunc) *Node {
	node := NewNode(config.NewTestConfig(t), handlers)
	if _, err := node.Process(initMessage()); err != nil {
		t.Fatalf("err: %v", err)
	}
	return node
}

func TestNodeInit(t *testing.T) {
	node := NewNode(config.NewTestConfig(t), nil)

	replies, err := node.Process(initMessage())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("init should produce exactly one reply, not %d", len(replies))
	}

	expected := wire.Message{
		Src:  "n1",
		Dest: "c1",
		Body: wire.NewInitOk(1),
	}
	if !reflect.DeepEqual(replies[0], expected) {
		t.Fatalf("reply should be %#v, not %#v", expected, replies[0])
	}

	if node.ID() != "n1" {
		t.Fatalf("node id should be n1, not %q", node.ID())
	}
	if len(node.PeerIDs()) != 3 {
		t.Fatalf("node should know 3 peers, not %d", len(node.PeerIDs()))
	}
}

func TestNodeNotInitialized(t *testing.T) {
	node := NewNode(config.NewTestConfig(t), map[wire.Kind]HandlerFunc{
		wire.KindEcho: EchoHandler,
	})

	echo := wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{Type: wire.TypeEcho, MsgID: 1, Echo: "Hello, World!"},
	}

	// valid message, but the node has no identity yet
	if _, err := node.Process(echo); !IsDispatch(err, NotInitialized) {
		t.Fatalf("err should be NotInitialized, not %v", err)
	}

	// no state may change on a failed dispatch
	if node.GenMsgID() != 1 {
		t.Fatalf("a rejected message should not consume msg ids")
	}
}

func TestNodeReinit(t *testing.T) {
	node := initedNode(t, nil)

	if _, err := node.Process(initMessage()); !IsDispatch(err, AlreadyInitialized) {
		t.Fatalf("err should be AlreadyInitialized, not %v", err)
	}
}

func TestNodeInitThenDispatch(t *testing.T) {
	node := NewNode(config.NewTestConfig(t), map[wire.Kind]HandlerFunc{
		wire.KindEcho: EchoHandler,
	})

	echo := wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{Type: wire.TypeEcho, MsgID: 1, Echo: "Hello, World!"},
	}

	if _, err := node.Process(echo); !IsDispatch(err, NotInitialized) {
		t.Fatalf("err should be NotInitialized, not %v", err)
	}

	if _, err := node.Process(initMessage()); err != nil {
		t.Fatalf("err: %v", err)
	}

	// the very message that failed before now succeeds
	replies, err := node.Process(echo)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	expected := wire.Message{
		Src:  "n1",
		Dest: "c1",
		Body: wire.NewEchoOk(1, 1, "Hello, World!"),
	}
	if !reflect.DeepEqual(replies[0], expected) {
		t.Fatalf("reply should be %#v, not %#v", expected, replies[0])
	}
}

func TestHandlerNotFound(t *testing.T) {
	node := initedNode(t, nil)

	echo := wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{Type: wire.TypeEcho, MsgID: 2, Echo: "hi"},
	}
	if _, err := node.Process(echo); !IsDispatch(err, HandlerNotFound) {
		t.Fatalf("err should be HandlerNotFound, not %v", err)
	}
}

func TestKeyNotFound(t *testing.T) {
	node := initedNode(t, nil)

	// a reply-only variant arriving as top-level input has no dispatchable key
	reply := wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{Type: wire.TypeInitOk, InReplyTo: 1},
	}
	if _, err := node.Process(reply); err != wire.ErrKeyNotFound {
		t.Fatalf("err should be ErrKeyNotFound, not %v", err)
	}
}

func TestUnexpectedBody(t *testing.T) {
	node := initedNode(t, nil)

	// invoking a handler with the wrong body is a wiring bug, guarded anyway
	read := wire.Message{
		Src:  "c1",
		Dest: "n1",
		Body: wire.Body{Type: wire.TypeRead, MsgID: 2},
	}
	if _, err := EchoHandler(node, read); !IsDispatch(err, UnexpectedBody) {
		t.Fatalf("err should be UnexpectedBody, not %v", err)
	}
}

func TestGenMsgIDMonotonic(t *testing.T) {
	node := initedNode(t, map[wire.Kind]HandlerFunc{
		wire.KindEcho: EchoHandler,
	})

	last := uint32(0)
	for i := 0; i < 5; i++ {
		echo := wire.Message{
			Src:  "c1",
			Dest: "n1",
			Body: wire.Body{Type: wire.TypeEcho, MsgID: uint32(i + 1), Echo: "x"},
		}
		replies, err := node.Process(echo)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		msgID := replies[0].Body.MsgID
		if msgID <= last {
			t.Fatalf("msg_id %d should be greater than %d", msgID, last)
		}
		last = msgID
	}
}
