package main

import (
	"fmt"

	"github.com/aphfiwiwi/biiscoti/internal/cli"
	"github.com/aphfiwiwi/biiscoti/internal/tui"
	"github.com/spf13/cobra"
)

func contactCmd() *cobra.Command {
	var call bool

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Show the support phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			phone := cfg.Contact.Phone
			if !call {
				fmt.Fprintln(out, cli.FormatInfo("Call us on "+phone))
				return nil
			}

			if err := (tui.SystemDialer{}).Dial(cmd.Context(), phone); err != nil {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Could not open the dialer. Call %s from your phone.", phone)))
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess("Calling "+phone))
			return nil
		},
	}

	cmd.Flags().BoolVar(&call, "call", false, "open the system dialer")

	return cmd
}
