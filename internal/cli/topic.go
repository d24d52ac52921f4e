package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/wire"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Manage the topic catalog",
	Long:  "Add, list, edit and analyze the reusable topics that agendas are built from",
}

var topicAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a topic to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, _ := cmd.Flags().GetString("category")

		id, err := wire.TopicService().AddTopic(ctx, primary.AddTopicRequest{
			Description: args[0],
			Category:    category,
		})
		if err != nil {
			return fmt.Errorf("failed to add topic: %w", err)
		}

		fmt.Printf("%s Added topic %d: %s\n", okMark(), id, args[0])
		return nil
	},
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog topics ordered by description",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		all, _ := cmd.Flags().GetBool("all")

		topics, err := wire.TopicService().ListTopics(ctx, !all)
		if err != nil {
			return fmt.Errorf("failed to list topics: %w", err)
		}

		if len(topics) == 0 {
			fmt.Println("No topics found")
			return nil
		}

		fmt.Printf("Found %d topic(s):\n\n", len(topics))
		for _, topic := range topics {
			fmt.Printf("%-6d %s", topic.ID, topic.Description)
			if topic.Category != "" {
				fmt.Printf(" [%s]", topic.Category)
			}
			if !topic.Active {
				fmt.Printf(" %s", color.New(color.FgYellow).Sprint("(inactive)"))
			}
			fmt.Println()
		}
		return nil
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show topic details and usage statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		topic, err := wire.TopicService().GetTopic(ctx, id)
		if err != nil {
			return fmt.Errorf("topic not found: %w", err)
		}

		fmt.Printf("Topic %d: %s\n", topic.ID, topic.Description)
		if topic.Category != "" {
			fmt.Printf("Category: %s\n", topic.Category)
		}
		if !topic.Active {
			fmt.Println("Status: inactive")
		}

		count, err := wire.StatsService().UsageCount(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load usage: %w", err)
		}
		fmt.Printf("Used in %d meeting(s)\n", count)

		dates, err := wire.StatsService().UsageDates(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load usage dates: %w", err)
		}
		if dates.Used {
			fmt.Printf("First used: %s\nLast used:  %s\n", dates.First, dates.Last)
		}
		return nil
	},
}

var topicUpdateCmd = &cobra.Command{
	Use:   "update [id] [description]",
	Short: "Rewrite a topic's description and category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")

		if err := wire.TopicService().UpdateTopic(ctx, id, args[1], category); err != nil {
			return fmt.Errorf("failed to update topic: %w", err)
		}

		fmt.Printf("%s Updated topic %d\n", okMark(), id)
		return nil
	},
}

var topicDeleteCmd = &cobra.Command{
	Use:   "delete [id]...",
	Short: "Deactivate topics (usage history is kept)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			if err := wire.TopicService().DeleteTopic(ctx, ids[0]); err != nil {
				return fmt.Errorf("failed to delete topic: %w", err)
			}
			fmt.Printf("%s Deleted topic %d\n", okMark(), ids[0])
			return nil
		}

		result := wire.TopicService().DeleteTopics(ctx, ids)
		printBatchResult("topic", result)
		return nil
	},
}

var topicHistoryCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show every meeting a topic appeared in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		uses, err := wire.StatsService().History(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(uses) == 0 {
			fmt.Println("Never used in a meeting")
			return nil
		}

		fmt.Printf("Used in %d meeting(s):\n\n", len(uses))
		for _, use := range uses {
			fmt.Printf("%-12s %-20s position %d (%s)\n", use.Date, use.Place, use.Position, use.Type)
		}
		return nil
	},
}

var topicImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Bulk-import topics from an .xlsx or .docx file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summary, err := wire.TransferService().ImportTopics(ctx, args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("%s Imported %d topic(s)\n", okMark(), summary.Imported)
		if summary.Failed > 0 {
			fmt.Printf("%s %d row(s) failed:\n", color.New(color.FgYellow).Sprint("!"), summary.Failed)
			for _, msg := range summary.Errors {
				fmt.Printf("  %s\n", msg)
			}
		}
		return nil
	},
}

var topicExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog with usage counts to xlsx or pdf",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dir, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		result, err := wire.TransferService().ExportTopics(ctx, dir, format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("%s Exported %d topic(s) to %s\n", okMark(), result.Count, result.Path)
		return nil
	},
}

func init() {
	topicAddCmd.Flags().StringP("category", "c", "", "Topic category")
	topicUpdateCmd.Flags().StringP("category", "c", "", "Topic category")
	topicListCmd.Flags().BoolP("all", "a", false, "Include inactive topics")
	topicExportCmd.Flags().StringP("out", "o", "", "Output directory (default current)")
	topicExportCmd.Flags().StringP("format", "f", "xlsx", "Export format: xlsx or pdf")

	topicCmd.AddCommand(topicAddCmd)
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicShowCmd)
	topicCmd.AddCommand(topicUpdateCmd)
	topicCmd.AddCommand(topicDeleteCmd)
	topicCmd.AddCommand(topicHistoryCmd)
	topicCmd.AddCommand(topicImportCmd)
	topicCmd.AddCommand(topicExportCmd)
}

// TopicCmd returns the topic command tree.
func TopicCmd() *cobra.Command {
	return topicCmd
}
