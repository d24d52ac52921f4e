package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/wire"
)

var delegateCmd = &cobra.Command{
	Use:   "delegate",
	Short: "Manage the delegate roster",
	Long:  "Add, list, edit and deactivate the delegates printed on every document",
}

var delegateAddCmd = &cobra.Command{
	Use:   "add [name] [surname]",
	Short: "Add a delegate to the roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		title, _ := cmd.Flags().GetString("title")
		district, _ := cmd.Flags().GetString("district")
		titular, _ := cmd.Flags().GetBool("titular")

		id, err := wire.DelegateService().AddDelegate(ctx, primary.AddDelegateRequest{
			Title:    title,
			Name:     args[0],
			Surname:  args[1],
			District: district,
			Titular:  titular,
		})
		if err != nil {
			return fmt.Errorf("failed to add delegate: %w", err)
		}

		fmt.Printf("%s Added delegate %d: %s %s\n", okMark(), id, args[0], args[1])
		return nil
	},
}

var delegateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List delegates in roster order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		all, _ := cmd.Flags().GetBool("all")
		titularOnly, _ := cmd.Flags().GetBool("titular")

		delegates, err := wire.DelegateService().ListDelegates(ctx, !all, titularOnly)
		if err != nil {
			return fmt.Errorf("failed to list delegates: %w", err)
		}

		if len(delegates) == 0 {
			fmt.Println("No delegates found")
			return nil
		}

		fmt.Printf("Found %d delegate(s):\n\n", len(delegates))
		for _, d := range delegates {
			fmt.Printf("%-6d %-40s %-10s", d.ID, d.FullName(), d.District)
			if !d.Titular {
				fmt.Print(" substitute")
			}
			if !d.Active {
				fmt.Printf(" %s", color.New(color.FgYellow).Sprint("(inactive)"))
			}
			fmt.Println()
		}
		return nil
	},
}

var delegateShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show delegate details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		d, err := wire.DelegateService().GetDelegate(ctx, id)
		if err != nil {
			return fmt.Errorf("delegate not found: %w", err)
		}

		fmt.Printf("Delegate %d: %s\n", d.ID, d.FullName())
		if d.District != "" {
			fmt.Printf("District: %s\n", d.District)
		}
		role := "titular"
		if !d.Titular {
			role = "substitute"
		}
		fmt.Printf("Role: %s\n", role)
		if !d.Active {
			fmt.Println("Status: inactive")
		}
		return nil
	},
}

var delegateUpdateCmd = &cobra.Command{
	Use:   "update [id] [name] [surname]",
	Short: "Rewrite a delegate's fields",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		district, _ := cmd.Flags().GetString("district")
		titular, _ := cmd.Flags().GetBool("titular")

		err = wire.DelegateService().UpdateDelegate(ctx, primary.UpdateDelegateRequest{
			DelegateID: id,
			Title:      title,
			Name:       args[1],
			Surname:    args[2],
			District:   district,
			Titular:    titular,
		})
		if err != nil {
			return fmt.Errorf("failed to update delegate: %w", err)
		}

		fmt.Printf("%s Updated delegate %d\n", okMark(), id)
		return nil
	},
}

var delegateDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Deactivate a delegate (past signatures are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.DelegateService().DeleteDelegate(ctx, id); err != nil {
			return fmt.Errorf("failed to delete delegate: %w", err)
		}

		fmt.Printf("%s Deleted delegate %d\n", okMark(), id)
		return nil
	},
}

func init() {
	delegateAddCmd.Flags().StringP("title", "t", "", "Honorific (Dr., Dra., ...)")
	delegateAddCmd.Flags().StringP("district", "d", "", "District label")
	delegateAddCmd.Flags().Bool("titular", true, "Titular delegate (false for substitute)")
	delegateUpdateCmd.Flags().StringP("title", "t", "", "Honorific (Dr., Dra., ...)")
	delegateUpdateCmd.Flags().StringP("district", "d", "", "District label")
	delegateUpdateCmd.Flags().Bool("titular", true, "Titular delegate (false for substitute)")
	delegateListCmd.Flags().BoolP("all", "a", false, "Include inactive delegates")
	delegateListCmd.Flags().Bool("titular", false, "Titular delegates only")

	delegateCmd.AddCommand(delegateAddCmd)
	delegateCmd.AddCommand(delegateListCmd)
	delegateCmd.AddCommand(delegateShowCmd)
	delegateCmd.AddCommand(delegateUpdateCmd)
	delegateCmd.AddCommand(delegateDeleteCmd)
}

// DelegateCmd returns the delegate command tree.
func DelegateCmd() *cobra.Command {
	return delegateCmd
}
