package main

import (
	"fmt"

	"github.com/aphfiwiwi/biiscoti/internal/cli"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/spf13/cobra"
)

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register and log in",
	}

	cmd.AddCommand(accountRegisterCmd())
	cmd.AddCommand(accountLoginCmd())

	return cmd
}

func accountRegisterCmd() *cobra.Command {
	var (
		form  shop.RegisterForm
		admin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, cfg, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			accounts, err := initAccounts(ctx, reg, cfg)
			if err != nil {
				return err
			}

			if form.Confirm == "" {
				form.Confirm = form.Password
			}
			form.Role = model.RoleBuyer
			if admin {
				form.Role = model.RoleAdmin
			}

			cred, err := accounts.Register(ctx, form)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Registered %s (%s)", cred.Username, cred.Role)))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Username, "username", "", "account name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&form.Confirm, "confirm", "", "password confirmation (defaults to --password)")
	cmd.Flags().BoolVar(&admin, "admin", false, "register a shop administrator")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func accountLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, cfg, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			accounts, err := initAccounts(ctx, reg, cfg)
			if err != nil {
				return err
			}

			session, err := accounts.Login(ctx, username, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Welcome, %s", session.Username)))
			fmt.Fprintln(out, cli.SubtleStyle.Render("Session expires "+session.ExpiresAt.Format("2006-01-02 15:04")))
			fmt.Fprintln(out, session.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account name")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
