package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/incseq/cmd/incseq/commands"
)

func main() {
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	rootCmd := &cobra.Command{
		Use:   "incseq",
		Short: "Sequentially increment numbers embedded in text",
		Long: `incseq takes a piece of text containing numbers and derives new text
where those numbers advance by a fixed step: pasted repeatedly, or found and
rewritten wherever structurally similar text appears in a file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	addRootFlags(rootCmd)

	// Config is resolved lazily so the persistent flags are parsed first.
	rootCmd.AddCommand(
		commands.NewRunCmd(newRootOpts),
		commands.NewVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
