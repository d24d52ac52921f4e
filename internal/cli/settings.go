package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/wire"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage document-generation preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := wire.SettingsStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Printf("Header:      %s\n", s.HeaderText)
		if s.SubheaderText != "" {
			fmt.Printf("Subheader:   %s\n", s.SubheaderText)
		}
		fmt.Printf("Title font:  %s %d", s.TitleFontFamily, s.TitleFontSize)
		if s.TitleBold {
			fmt.Print(" bold")
		}
		fmt.Println()
		if s.LogoPath != "" {
			fmt.Printf("Logo:        %s (%.1fx%.1f cm)\n", s.LogoPath, s.LogoWidthCm, s.LogoHeightCm)
		}
		fmt.Printf("Output dir:  %s\n", s.OutputDir)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings via flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := wire.SettingsStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("header") {
			s.HeaderText, _ = flags.GetString("header")
		}
		if flags.Changed("subheader") {
			s.SubheaderText, _ = flags.GetString("subheader")
		}
		if flags.Changed("font") {
			s.TitleFontFamily, _ = flags.GetString("font")
		}
		if flags.Changed("size") {
			s.TitleFontSize, _ = flags.GetInt("size")
		}
		if flags.Changed("bold") {
			s.TitleBold, _ = flags.GetBool("bold")
		}
		if flags.Changed("subtitle-bold") {
			s.SubtitleBold, _ = flags.GetBool("subtitle-bold")
		}
		if flags.Changed("logo") {
			s.LogoPath, _ = flags.GetString("logo")
		}
		if flags.Changed("logo-width") {
			s.LogoWidthCm, _ = flags.GetFloat64("logo-width")
		}
		if flags.Changed("logo-height") {
			s.LogoHeightCm, _ = flags.GetFloat64("logo-height")
		}
		if flags.Changed("output-dir") {
			s.OutputDir, _ = flags.GetString("output-dir")
		}

		if err := wire.SettingsStore().Save(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("%s Settings saved\n", okMark())
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().String("header", "", "Document header text")
	settingsSetCmd.Flags().String("subheader", "", "Document subheader text (blank to hide)")
	settingsSetCmd.Flags().String("font", "", "Title font family (Helvetica, Arial, Times New Roman, Courier, Georgia)")
	settingsSetCmd.Flags().Int("size", 0, "Title font size in points")
	settingsSetCmd.Flags().Bool("bold", true, "Bold title")
	settingsSetCmd.Flags().Bool("subtitle-bold", true, "Bold subtitle")
	settingsSetCmd.Flags().String("logo", "", "Logo image path (png, jpeg or gif)")
	settingsSetCmd.Flags().Float64("logo-width", 0, "Logo width in cm")
	settingsSetCmd.Flags().Float64("logo-height", 0, "Logo height in cm")
	settingsSetCmd.Flags().String("output-dir", "", "Directory for generated documents")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

// SettingsCmd returns the settings command tree.
func SettingsCmd() *cobra.Command {
	return settingsCmd
}
