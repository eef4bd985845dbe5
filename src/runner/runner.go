// Package runner owns the line-oriented transport loop that drives a node:
// read a record, decode it, feed the node, and write every produced record on
// its own output line. Decode and dispatch failures go to the diagnostic
// stream and never terminate the loop.
package runner

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/gustnet/gust/src/node"
	"github.com/gustnet/gust/src/node/state"
	"github.com/gustnet/gust/src/wire"
	"github.com/sirupsen/logrus"
)

// maxRecordSize bounds a single input line.
const maxRecordSize = 1024 * 1024

// Runner feeds decoded messages into a node strictly one at a time, in arrival
// order, and emits the returned messages before reading the next input.
type Runner struct {
	node   *node.Node
	in     io.Reader
	out    io.Writer
	logger *logrus.Entry
}

// New returns a Runner bound to stdin and stdout.
func New(n *node.Node, logger *logrus.Entry) *Runner {
	return NewWithIO(n, os.Stdin, os.Stdout, logger)
}

// NewWithIO returns a Runner with explicit streams.
func NewWithIO(n *node.Node, in io.Reader, out io.Writer, logger *logrus.Entry) *Runner {
	return &Runner{
		node:   n,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run processes records until the input stream closes, then moves the node to
// Shutdown. It returns an error only when the input stream itself fails or a
// produced record cannot be written; per-message failures are logged and
// skipped.
func (r *Runner) Run() error {
	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRecordSize)

	for scanner.Scan() {
		record := bytes.TrimSpace(scanner.Bytes())
		if len(record) == 0 {
			continue
		}

		msg := wire.Message{}
		if err := msg.Unmarshal(record); err != nil {
			r.logger.WithError(err).Error("Cannot decode input record")
			continue
		}

		replies, err := r.node.Process(msg)
		if err != nil {
			r.logger.WithFields(logrus.Fields{
				"type": msg.Body.Type,
				"src":  msg.Src,
			}).Error(err)
			continue
		}

		for _, reply := range replies {
			if err := r.write(reply); err != nil {
				return err
			}
		}
	}

	r.node.SetState(state.Shutdown)

	return scanner.Err()
}

// write encodes one message as a single output line.
func (r *Runner) write(msg wire.Message) error {
	record, err := msg.Marshal()
	if err != nil {
		return err
	}

	if _, err := r.out.Write(append(record, '\n')); err != nil {
		return err
	}

	return nil
}
