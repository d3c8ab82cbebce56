package main

import (
	"fmt"

	"FinanceTracker/database/postgres"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}

	var steps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := postgres.New()
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer db.Close()

			if err := postgres.MigrateUp(db); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := postgres.New()
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer db.Close()

			if err := postgres.MigrateDown(db, steps); err != nil {
				return err
			}
			cmd.Printf("rolled back %d step(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := postgres.New()
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer db.Close()

			v, dirty, err := postgres.Version(db)
			if err != nil {
				return err
			}
			cmd.Printf("version %d (dirty: %t)\n", v, dirty)
			return nil
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}
