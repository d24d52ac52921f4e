package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/wire"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Compose the draft meeting agenda",
	Long: `Build the agenda for the next meeting topic by topic. The draft survives
between invocations and is committed by 'agenda generate' or discarded by
'agenda clear'.`,
}

var agendaAddCmd = &cobra.Command{
	Use:   "add [topic-id]",
	Short: "Append a catalog topic to the draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.AgendaService().AddEntry(ctx, id); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		fmt.Printf("%s Added topic %d to the draft\n", okMark(), id)
		return nil
	},
}

var agendaRemoveCmd = &cobra.Command{
	Use:   "remove [position]",
	Short: "Remove the entry at a position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pos, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.AgendaService().RemoveEntry(ctx, int(pos)-1); err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}

		fmt.Printf("%s Removed entry %d\n", okMark(), pos)
		return nil
	},
}

var agendaUpCmd = &cobra.Command{
	Use:   "up [position]",
	Short: "Move the entry at a position one slot earlier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pos, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.AgendaService().MoveUp(ctx, int(pos)-1); err != nil {
			return fmt.Errorf("failed to move entry: %w", err)
		}
		return showDraft(ctx)
	},
}

var agendaDownCmd = &cobra.Command{
	Use:   "down [position]",
	Short: "Move the entry at a position one slot later",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pos, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.AgendaService().MoveDown(ctx, int(pos)-1); err != nil {
			return fmt.Errorf("failed to move entry: %w", err)
		}
		return showDraft(ctx)
	},
}

var agendaInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Set the draft meeting metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		req := primary.MeetingInfoRequest{}
		req.Date, _ = cmd.Flags().GetString("date")
		req.Time, _ = cmd.Flags().GetString("time")
		req.Place, _ = cmd.Flags().GetString("place")
		req.Venue, _ = cmd.Flags().GetString("venue")
		req.Type, _ = cmd.Flags().GetString("type")
		req.Platform, _ = cmd.Flags().GetString("platform")

		if err := wire.AgendaService().SetMeetingInfo(ctx, req); err != nil {
			return fmt.Errorf("failed to set meeting info: %w", err)
		}

		fmt.Printf("%s Meeting info saved\n", okMark())
		return nil
	},
}

var agendaSignersCmd = &cobra.Command{
	Use:   "signers [chair-id] [secretary-id]",
	Short: "Override the default chair and secretary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		chairID, err := parseID(args[0])
		if err != nil {
			return err
		}
		secretaryID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := wire.AgendaService().SetSigners(ctx, chairID, secretaryID); err != nil {
			return fmt.Errorf("failed to set signers: %w", err)
		}

		fmt.Printf("%s Signers saved\n", okMark())
		return nil
	},
}

var agendaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showDraft(context.Background())
	},
}

var agendaClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the draft without recording a meeting",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AgendaService().Clear(context.Background()); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		fmt.Printf("%s Draft cleared\n", okMark())
		return nil
	},
}

var agendaPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the plain-text preview (nothing is recorded)",
	RunE: func(cmd *cobra.Command, args []string) error {
		preview, err := wire.DocumentService().Preview(context.Background())
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Print(preview)
		return nil
	},
}

var agendaGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the document and record the meeting",
	Long: `Render the draft to PDF or DOCX under the output directory, then commit
the meeting to the history in a single transaction and clear the draft.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		format, _ := cmd.Flags().GetString("format")

		result, err := wire.DocumentService().Generate(ctx, format)
		if err != nil {
			return fmt.Errorf("failed to generate document: %w", err)
		}

		fmt.Printf("%s Document written to %s\n", okMark(), result.Path)
		fmt.Printf("%s Meeting %d recorded\n", okMark(), result.MeetingID)
		return nil
	},
}

// showDraft prints the draft metadata and numbered entries.
func showDraft(ctx context.Context) error {
	draft, err := wire.AgendaService().Draft(ctx)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	if draft.Date != "" || draft.Place != "" {
		fmt.Printf("Meeting: %s %s at %s", draft.Date, draft.Time, draft.Place)
		if draft.Type != "" {
			fmt.Printf(" (%s)", draft.Type)
		}
		fmt.Println()
	}
	if len(draft.Entries) == 0 {
		fmt.Println("Draft agenda is empty")
		return nil
	}

	fmt.Printf("Draft agenda (%d entries):\n", len(draft.Entries))
	for _, e := range draft.Entries {
		fmt.Printf("  %d.- %s\n", e.Position, e.Description)
	}
	return nil
}

func init() {
	agendaInfoCmd.Flags().StringP("date", "d", "", "Meeting date (ISO format recommended: 2025-03-14)")
	agendaInfoCmd.Flags().StringP("time", "t", "", "Meeting time")
	agendaInfoCmd.Flags().StringP("place", "p", "", "Meeting place")
	agendaInfoCmd.Flags().String("venue", "", "Venue address (optional)")
	agendaInfoCmd.Flags().String("type", "in-person", "Meeting type: in-person or virtual")
	agendaInfoCmd.Flags().String("platform", "", "Platform for virtual meetings")
	agendaGenerateCmd.Flags().StringP("format", "f", "pdf", "Document format: pdf or docx")

	agendaCmd.AddCommand(agendaAddCmd)
	agendaCmd.AddCommand(agendaRemoveCmd)
	agendaCmd.AddCommand(agendaUpCmd)
	agendaCmd.AddCommand(agendaDownCmd)
	agendaCmd.AddCommand(agendaInfoCmd)
	agendaCmd.AddCommand(agendaSignersCmd)
	agendaCmd.AddCommand(agendaShowCmd)
	agendaCmd.AddCommand(agendaClearCmd)
	agendaCmd.AddCommand(agendaPreviewCmd)
	agendaCmd.AddCommand(agendaGenerateCmd)
}

// AgendaCmd returns the agenda command tree.
func AgendaCmd() *cobra.Command {
	return agendaCmd
}
