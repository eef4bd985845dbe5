package command

import (
	"fmt"
	"os"

	"github.com/gustnet/gust/src/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	conf    *config.Config
	datadir *string
)

func init() {
	conf = config.NewDefaultConfig()

	cobra.OnInitialize(initConfig)

	// Base datadir
	datadir = RootCmd.PersistentFlags().StringP("datadir", "d", conf.DataDir, "Base configuration directory")

	// Logging
	RootCmd.PersistentFlags().String("log", conf.LogLevel, "Log level (debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().String("log-file", conf.LogFile, "Also append logs to this file")
	RootCmd.PersistentFlags().StringP("moniker", "m", conf.Moniker, "Friendly name used as the log prefix")

	RootCmd.AddCommand(
		echoCmd,
		generateCmd,
		broadcastCmd,
		versionCmd,
	)
}

func initConfig() {
	viper.AddConfigPath(*datadir)
	viper.SetConfigName("gust")

	viper.BindPFlags(RootCmd.PersistentFlags())

	// conf.Logger() must not be built here: the log level and log file are
	// only known after Unmarshal.
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug(err, ". Taking cli or default.")
	}

	if err := viper.Unmarshal(conf); err != nil {
		logrus.Warn(err, ". Taking cli or default.")
	}
}

// RootCmd with no arguments runs a node serving every workload, so the bare
// binary can be driven entirely by its input stream.
var RootCmd = &cobra.Command{
	Use:   "gust",
	Short: "gust distributed-node simulator",
	Long: `gust distributed-node simulator

A gust node communicates exclusively through line-delimited JSON records: it
reads messages on stdin, processes them one at a time, and writes every reply
on its own stdout line. Diagnostics go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode(allHandlers())
	},
}

// Execute ...
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)

		os.Exit(1)
	}
}
