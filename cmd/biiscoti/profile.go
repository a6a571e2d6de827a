package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/cli"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/spf13/cobra"
)

const profileWriteTimeout = 5 * time.Second

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		Args:  cobra.NoArgs,
		RunE:  showProfile,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE:  showProfile,
	})
	cmd.AddCommand(profileSaveCmd())

	return cmd
}

func showProfile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reg, _, err := initRegistry()
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	profiles, err := reg.Profiles(ctx)
	if err != nil {
		return err
	}

	p, err := profiles.First(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No profile saved yet. Use 'biiscoti profile save'."))
		return nil
	}

	content := fmt.Sprintf("Name:  %s\nEmail: %s\nPhone: %s", p.Name, p.Email, p.Phone)
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Profile", content))
	return nil
}

func profileSaveCmd() *cobra.Command {
	var form shop.ProfileForm

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, _, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			profiles, err := reg.Profiles(ctx)
			if err != nil {
				return err
			}

			holder := shop.NewProfileHolder(ctx, profiles)
			defer func() { _ = holder.Close() }()

			// Wait for the first snapshot so Save replaces the stored row.
			select {
			case <-holder.Updates():
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := holder.Save(form); err != nil {
				return err
			}

			flushCtx, cancel := context.WithTimeout(ctx, profileWriteTimeout)
			defer cancel()
			if err := holder.Flush(flushCtx); err != nil {
				return err
			}
			if err := holder.LastErr(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Profile saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
