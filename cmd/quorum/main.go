package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/cli"
	"github.com/example/quorum/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "quorum",
		Short:   "quorum - meeting agenda composer and record keeper",
		Version: version.String(),
		Long: `quorum maintains a catalog of reusable meeting topics and a delegate
roster, composes the order of business for the next session, renders it
to PDF or DOCX, and keeps the history of every committed meeting.`,
	}

	rootCmd.AddCommand(cli.TopicCmd())
	rootCmd.AddCommand(cli.DelegateCmd())
	rootCmd.AddCommand(cli.AgendaCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
