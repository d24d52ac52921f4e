package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/quorum/internal/adapters/sqlite"
	"github.com/example/quorum/internal/app"
	"github.com/example/quorum/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a scratch database.

These commands require QUORUM_DATA_DIR to point at a non-default data
directory. Running without it errors to prevent accidental modification
of the production database.`,
	}

	cmd.AddCommand(devResetCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the dev database with fresh fixtures",
		Long: `Delete the database under QUORUM_DATA_DIR and recreate it with the
seed roster, a small topic catalog and two committed meetings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("QUORUM_DATA_DIR") == "" {
				return fmt.Errorf("QUORUM_DATA_DIR not set - refusing to reset the default database")
			}

			dbPath, err := db.GetDBPath()
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("This will delete and recreate: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			db.Close()
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("%s Deleted %s\n", okMark(), dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Printf("%s Created fresh database with schema\n", okMark())

			delegates := app.NewDelegateService(sqlite.NewDelegateRepository(database))
			if err := delegates.EnsureSeeded(context.Background()); err != nil {
				return fmt.Errorf("failed to seed roster: %w", err)
			}
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Printf("%s Seeded fixture data\n", okMark())

			fmt.Println("\nSeeded entities:")
			fmt.Println("  - 10 delegates")
			fmt.Println("  - 5 topics")
			fmt.Println("  - 2 meetings with agendas and signers")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
