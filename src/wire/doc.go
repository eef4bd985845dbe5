// Package wire defines the message envelope and body taxonomy exchanged
// between nodes and the test harness, and the JSON codec for reading and
// writing them as line-delimited records.
package wire
