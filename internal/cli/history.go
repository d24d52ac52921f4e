package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the committed meeting history",
	Long:  "List, search, inspect, delete and export past meetings",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all meetings, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := wire.MeetingService().ListMeetings(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list meetings: %w", err)
		}
		printSummaries(summaries)
		return nil
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search meetings by date or topic substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := wire.MeetingService().SearchMeetings(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printSummaries(summaries)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a meeting's agenda",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		topics, err := wire.MeetingService().TopicsForMeeting(ctx, id)
		if err != nil {
			return fmt.Errorf("meeting not found: %w", err)
		}

		if len(topics) == 0 {
			fmt.Println("No topics")
			return nil
		}
		for _, topic := range topics {
			fmt.Printf("%d.- %s", topic.Position, topic.Description)
			if topic.Category != "" {
				fmt.Printf(" [%s]", topic.Category)
			}
			fmt.Println()
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]...",
	Short: "Delete meetings and their agenda items and signatures",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			found, err := wire.MeetingService().DeleteMeeting(ctx, ids[0])
			if err != nil {
				return fmt.Errorf("failed to delete meeting: %w", err)
			}
			if !found {
				fmt.Printf("Meeting %d not found\n", ids[0])
				return nil
			}
			fmt.Printf("%s Deleted meeting %d\n", okMark(), ids[0])
			return nil
		}

		result := wire.MeetingService().DeleteMeetings(ctx, ids)
		printBatchResult("meeting", result)
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history with topic summaries to xlsx or pdf",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dir, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		result, err := wire.TransferService().ExportHistory(ctx, dir, format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("%s Exported %d meeting(s) to %s\n", okMark(), result.Count, result.Path)
		return nil
	},
}

func printSummaries(summaries []*primary.MeetingSummary) {
	if len(summaries) == 0 {
		fmt.Println("No meetings found")
		return
	}

	fmt.Printf("Found %d meeting(s):\n\n", len(summaries))
	for _, s := range summaries {
		fmt.Printf("%-6d %-12s %-8s %-20s %-10s %d topic(s)\n",
			s.ID, s.Date, s.Time, s.Place, s.Type, s.TopicCount)
	}
}

func init() {
	historyExportCmd.Flags().StringP("out", "o", "", "Output directory (default current)")
	historyExportCmd.Flags().StringP("format", "f", "xlsx", "Export format: xlsx or pdf")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyExportCmd)
}

// HistoryCmd returns the history command tree.
func HistoryCmd() *cobra.Command {
	return historyCmd
}
