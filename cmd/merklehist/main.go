// Command merklehist is a small CLI around the merkletree and kvstore
// packages: it builds a tree from a list of newline-delimited blocks and
// can generate/verify membership and incremental proofs against it, and it
// can drive the kvstore overlay for a scripted sequence of puts.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("merklehist: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merklehist",
		Short: "Build and inspect a history-authenticating Merkle tree",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newTreeCmd())
	cmd.AddCommand(newKVCmd())
	return cmd
}
