package main

import (
	"os"

	"github.com/TuftsBCB/phylo/config"
	"github.com/TuftsBCB/phylo/logging"
	"github.com/spf13/cobra"
)

// conf is set up before any command runs.
var conf = config.Default()

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
		logFile    string
	)

	rootCmd := &cobra.Command{
		Use:          "phylo",
		Short:        "Read, write and compare phylogenetic trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf = config.Default()
			if configFile != "" {
				c, err := config.Load(configFile)
				if err != nil {
					return err
				}
				conf = c
			}
			if logLevel != "" {
				conf.Logging.Level = logLevel
			}
			if logFile != "" {
				conf.Logging.Logfile = logFile
			}
			return logging.Init(conf.Logging)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sugar.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newTraverseCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newBipartCmd())
	rootCmd.AddCommand(newRFCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
