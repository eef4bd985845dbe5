package command

import (
	"github.com/gustnet/gust/src/node"
	"github.com/gustnet/gust/src/runner"
	"github.com/gustnet/gust/src/wire"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runNode assembles a node with the given workload handlers and drives it from
// stdin until the input stream closes.
func runNode(handlers map[wire.Kind]node.HandlerFunc) error {
	logger := conf.Logger()

	logger.WithFields(logrus.Fields{
		"datadir":  conf.DataDir,
		"log":      conf.LogLevel,
		"log-file": conf.LogFile,
		"moniker":  conf.Moniker,
	}).Debug("RUN")

	n := node.NewNode(conf, handlers)

	return runner.New(n, logger).Run()
}

// allHandlers registers every workload on one node.
func allHandlers() map[wire.Kind]node.HandlerFunc {
	return map[wire.Kind]node.HandlerFunc{
		wire.KindEcho:      node.EchoHandler,
		wire.KindGenerate:  node.GenerateHandler,
		wire.KindBroadcast: node.BroadcastHandler,
		wire.KindRead:      node.ReadHandler,
		wire.KindTopology:  node.TopologyHandler,
	}
}

var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Run a node serving only the echo workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode(map[wire.Kind]node.HandlerFunc{
			wire.KindEcho: node.EchoHandler,
		})
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run a node serving only the unique-id workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode(map[wire.Kind]node.HandlerFunc{
			wire.KindGenerate: node.GenerateHandler,
		})
	},
}

var broadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Run a node serving the broadcast, read and topology workloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode(map[wire.Kind]node.HandlerFunc{
			wire.KindBroadcast: node.BroadcastHandler,
			wire.KindRead:      node.ReadHandler,
			wire.KindTopology:  node.TopologyHandler,
		})
	},
}
