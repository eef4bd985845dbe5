package wire

import (
	"reflect"
	"testing"
)

func TestMessageUnmarshal(t *testing.T) {
	record := `{"src":"c1","dest":"n1","body":{"type":"init","msg_id":1,"node_id":"n1","node_ids":["n1","n2","n3"]}}`

	msg := Message{}
	if err := msg.Unmarshal([]byte(record)); err != nil {
		t.Fatalf("err: %v", err)
	}

	expected := Message{
		Src:  "c1",
		Dest: "n1",
		Body: Body{
			Type:    TypeInit,
			MsgID:   1,
			NodeID:  "n1",
			NodeIDs: []string{"n1", "n2", "n3"},
		},
	}

	if !reflect.DeepEqual(msg, expected) {
		t.Fatalf("message should be %#v, not %#v", expected, msg)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		Src:  "n1",
		Dest: "n2",
		Body: NewBroadcast(3, 1000),
	}

	record, err := msg.Marshal()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	decoded := Message{}
	if err := decoded.Unmarshal(record); err != nil {
		t.Fatalf("err: %v", err)
	}

	if decoded.Src != "n1" || decoded.Dest != "n2" {
		t.Fatalf("envelope should survive the round trip: %#v", decoded)
	}
	if decoded.Body.Type != TypeBroadcast || decoded.Body.MsgID != 3 {
		t.Fatalf("body should survive the round trip: %#v", decoded.Body)
	}
	if decoded.Body.Message == nil || *decoded.Body.Message != 1000 {
		t.Fatalf("broadcast value should survive the round trip: %#v", decoded.Body.Message)
	}
}

func TestBroadcastValueZero(t *testing.T) {
	record := `{"src":"c1","dest":"n1","body":{"type":"broadcast","message":0,"msg_id":2}}`

	msg := Message{}
	if err := msg.Unmarshal([]byte(record)); err != nil {
		t.Fatalf("err: %v", err)
	}

	if msg.Body.Message == nil {
		t.Fatalf("value 0 should decode as present, not missing")
	}
	if *msg.Body.Message != 0 {
		t.Fatalf("value should be 0, not %d", *msg.Body.Message)
	}
}

func TestReadOkEmptySnapshot(t *testing.T) {
	record := `{"src":"n1","dest":"c1","body":{"type":"read_ok","in_reply_to":1,"msg_id":2,"messages":[]}}`

	msg := Message{}
	if err := msg.Unmarshal([]byte(record)); err != nil {
		t.Fatalf("err: %v", err)
	}

	if msg.Body.Messages == nil {
		t.Fatalf("an empty snapshot should decode as present, not missing")
	}
	if len(*msg.Body.Messages) != 0 {
		t.Fatalf("snapshot should be empty, not %v", *msg.Body.Messages)
	}

	body := NewReadOk(1, 2, nil)
	if body.Messages == nil {
		t.Fatalf("NewReadOk should never build a missing messages field")
	}
}

func TestBodyKind(t *testing.T) {
	requests := map[string]Kind{
		TypeInit:      KindInit,
		TypeEcho:      KindEcho,
		TypeGenerate:  KindGenerate,
		TypeBroadcast: KindBroadcast,
		TypeRead:      KindRead,
		TypeTopology:  KindTopology,
	}

	for tag, expected := range requests {
		kind, err := Body{Type: tag}.Kind()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if kind != expected {
			t.Fatalf("kind of %q should be %v, not %v", tag, expected, kind)
		}
		if kind.String() != tag {
			t.Fatalf("kind string should be %q, not %q", tag, kind.String())
		}
	}

	// Replies and unknown tags are never dispatchable.
	for _, tag := range []string{TypeInitOk, TypeEchoOk, TypeGenerateOk,
		TypeBroadcastOk, TypeReadOk, TypeTopologyOk, TypeError, "", "wat"} {
		kind, err := Body{Type: tag}.Kind()
		if err != ErrKeyNotFound {
			t.Fatalf("kind of %q should fail with ErrKeyNotFound, got %v, %v", tag, kind, err)
		}
		if kind != KindInvalid {
			t.Fatalf("kind of %q should be KindInvalid, not %v", tag, kind)
		}
	}
}
