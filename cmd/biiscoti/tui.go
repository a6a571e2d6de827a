package main

import (
	"fmt"
	"log/slog"

	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/tui"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	var (
		start string
		theme string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive marketplace",
		Long: `Start the interactive marketplace.

The app opens on the splash screen. Log in or register, then pick a shop
from the home menu or the bottom bar (F1-F5). Esc goes back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			route, err := parseRoute(start)
			if err != nil {
				return err
			}

			reg, cfg, err := initRegistry()
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			accounts, err := initAccounts(ctx, reg, cfg)
			if err != nil {
				return err
			}

			slog.Info("starting tui", "data_dir", cfg.Data.Dir, "start", route)

			return tui.Run(ctx,
				tui.WithRegistry(reg),
				tui.WithAccounts(accounts),
				tui.WithContactPhone(cfg.Contact.Phone),
				tui.WithStartRoute(route),
				tui.WithTheme(themes.GetTheme(theme)),
			)
		},
	}

	cmd.Flags().StringVar(&start, "start", string(nav.Splash), "first screen (splash, login, register)")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, night)")

	return cmd
}

// parseRoute accepts the entry screens only; everything else needs a
// session first.
func parseRoute(name string) (nav.Route, error) {
	switch r := nav.Route(name); r {
	case nav.Splash, nav.Login, nav.Register:
		return r, nil
	default:
		return "", fmt.Errorf("invalid start screen %q: must be splash, login or register", name)
	}
}
