package main

import (
	"fmt"
	"path/filepath"

	"github.com/aphfiwiwi/biiscoti/internal/cli"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade every shop database",
		Long:  `Open every database in the data directory, applying pending schema migrations.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			out := cmd.OutOrStdout()
			if status {
				fmt.Fprintln(out, cli.HeaderStyle.Render("Databases"))
				for _, name := range databaseNames() {
					fmt.Fprintf(out, "  %-24s %s\n", name, cli.SubtleStyle.Render(filepath.Join(reg.Dir(), name)))
				}
				fmt.Fprintf(out, "Expected schema version: %d\n", storage.ExpectedSchemaVersion)
				return nil
			}

			if err := reg.OpenAll(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("All databases at schema version %d", storage.ExpectedSchemaVersion)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show database files without migrating")

	return cmd
}

func databaseNames() []string {
	names := make([]string, 0, len(model.Categories())+2)
	for _, c := range model.Categories() {
		names = append(names, c.Info().DBName)
	}
	return append(names, storage.ProfileDBName, storage.CredentialsDBName)
}
