package node

import (
	"fmt"
	"strconv"
	"time"
)

// nodeNumMask keeps the node sequence number in bits 8-15 of a unique id.
const nodeNumMask = 0x000000000000FF00

// GenUniqueID returns a node-unique identifier as a decimal string. The id
// packs the low 48 bits of the current millisecond timestamp in the high end
// of a 64-bit word, an 8-bit node sequence number in bits 8-15, and an 8-bit
// wrapping counter in bits 0-7.
//
// Two calls within the same millisecond are distinguished by the counter, so
// collisions require more than 256 calls in one millisecond. Across nodes, the
// embedded sequence number disambiguates as long as distinct nodes carry
// distinct numeric suffixes.
//
// Precondition: the node identity is a single non-digit prefix character
// followed by digits, e.g. "n3". Any other shape fails the message being
// processed.
func (n *Node) GenUniqueID() (string, error) {
	epoch := uint64(time.Now().UnixMilli())
	part1 := (epoch << 30) >> 7 // 48 bit epoch

	nodeNum, err := n.sequenceNumber()
	if err != nil {
		return "", err
	}
	part2 := (nodeNum << 8) & nodeNumMask // 8 bit node number

	n.uidCounter++
	part3 := uint64(n.uidCounter) // 8 bit counter (wrapped)

	return strconv.FormatUint(part1|part2|part3, 10), nil
}

// sequenceNumber parses the numeric suffix of the node's identity.
func (n *Node) sequenceNumber() (uint64, error) {
	id := n.ID()
	if len(id) < 2 {
		return 0, fmt.Errorf("node identity %q is too short to carry a sequence number", id)
	}

	num, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node identity %q has no numeric suffix: %v", id, err)
	}

	return num, nil
}
