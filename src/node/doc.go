// Package node implements the protocol engine of a gust node: the
// initialization-gated dispatch state machine, the handler registry, the
// broadcast/gossip engine with its dedup log and topology-aware fan-out, and
// the bit-packed unique-id generator.
//
// A Node is driven externally, one message at a time. The transport reads a
// record, feeds it to Process, and writes every record Process returns. There
// is no internal queuing, no suspension point inside Process, and no parallel
// handler execution.
package node
