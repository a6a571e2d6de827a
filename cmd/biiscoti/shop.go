package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aphfiwiwi/biiscoti/internal/cli"
	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/spf13/cobra"
)

func shopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and manage shop listings",
		Long: `Browse and manage the listings of each shop.

Shops: restaurant, bakery, thrift, jewelry, horticulture, hair, grocery.`,
	}

	cmd.AddCommand(shopListCmd())
	cmd.AddCommand(shopAddCmd())
	cmd.AddCommand(shopDeleteCmd())
	cmd.AddCommand(shopSearchCmd())
	cmd.AddCommand(shopImportCmd())
	cmd.AddCommand(shopCategoriesCmd())

	return cmd
}

func shopCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available shops",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.HeaderStyle.Render("Shops"))
			for _, c := range model.Categories() {
				info := c.Info()
				fmt.Fprintf(out, "  %-14s %s\n", c, cli.SubtleStyle.Render(info.Title))
			}
		},
	}
}

func shopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <shop>",
		Short: "List every listing of a shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			table, c, err := listingsFor(ctx, reg, args[0])
			if err != nil {
				return err
			}

			listings, err := table.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", c, err)
			}
			return cli.PrintListings(cmd.OutOrStdout(), c.Info(), listings)
		},
	}
}

func shopSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <shop> <query>",
		Short: "List listings whose name contains query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			table, c, err := listingsFor(ctx, reg, args[0])
			if err != nil {
				return err
			}

			listings, err := table.ListByName(ctx, args[1])
			if err != nil {
				return fmt.Errorf("failed to search %s: %w", c, err)
			}
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No matches for %q", args[1])))
				return nil
			}
			return cli.PrintListings(cmd.OutOrStdout(), c.Info(), listings)
		},
	}
}

func shopAddCmd() *cobra.Command {
	var form shop.ListingForm

	cmd := &cobra.Command{
		Use:   "add <shop>",
		Short: "Add a listing to a shop",
		Long: `Add a listing to a shop.

The amount must be a number. Invalid input adds nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			listing, err := form.Parse()
			if err != nil {
				return err
			}

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			table, c, err := listingsFor(ctx, reg, args[0])
			if err != nil {
				return err
			}

			saved, err := table.InsertOrReplace(ctx, listing)
			if err != nil {
				return fmt.Errorf("failed to add listing: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %q to %s (id %d)", saved.Name, c.Info().Title, saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "listing name")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "price or amount")
	cmd.Flags().StringVar(&form.Description, "description", "", "short description")
	cmd.Flags().StringVar(&form.Contact, "contact", "", "contact for this listing")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func shopDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <shop> <id>",
		Short: "Remove a listing by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid listing id %q: %w", args[1], err)
			}

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			table, _, err := listingsFor(ctx, reg, args[0])
			if err != nil {
				return err
			}

			existing, err := table.Get(ctx, id)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
			}

			if err := table.Delete(ctx, *existing); err != nil {
				return fmt.Errorf("failed to delete listing: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed %q", existing.Name)))
			return nil
		},
	}
}

func shopImportCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import listings from a YAML file",
		Long: `Import listings from a YAML file of the form:

  category: bakery
  listings:
    - name: Croissant
      amount: 1.5
      description: Butter, flaky

Listings with a blank name are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			file, err := shop.DecodeImport(f)
			if err != nil {
				return err
			}
			if len(file.Listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Nothing to import"))
				return nil
			}

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			table, c, err := listingsFor(ctx, reg, file.Category)
			if err != nil {
				return err
			}

			var progress func()
			if !noProgress {
				bar := cli.NewProgress(cmd.ErrOrStderr(), len(file.Listings), "Importing "+c.Info().Title)
				defer func() { _ = bar.Finish() }()
				progress = func() { _ = bar.Add(1) }
			}

			res, err := shop.Import(ctx, table, file.Listings, progress)
			if err != nil && !errors.Is(err, common.ErrInvalidListing) {
				return err
			}
			common.LogInfo("import finished", common.Fields{"category": c, "saved": res.Saved, "skipped": res.Skipped})

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d listings into %s", res.Saved, c.Info().Title)))
			if res.Skipped > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("Skipped %d invalid listings", res.Skipped)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	return cmd
}
