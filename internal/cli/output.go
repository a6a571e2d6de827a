package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/schollz/progressbar/v3"
)

// PrintListings writes listings as an aligned table.
func PrintListings(w io.Writer, info model.CategoryInfo, listings []model.Listing) error {
	if len(listings) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No "+strings.ToLower(info.Title)+" listings yet."))
		return err
	}

	view := viewmodel.NewListingListView(info, listings, true)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Name"),
		HeaderStyle.Render(info.AmountLabel),
		HeaderStyle.Render("Description"),
		HeaderStyle.Render("Contact"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 4),
		strings.Repeat("-", 20),
		strings.Repeat("-", 10),
		strings.Repeat("-", 30),
		strings.Repeat("-", 12))

	for _, item := range view.Items {
		desc := item.Description
		if desc == "" {
			desc = SubtleStyle.Render("(no description)")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Amount, desc, item.Contact)
	}

	return tw.Flush()
}

// NewProgress creates a progress bar for total items.
func NewProgress(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[yellow][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[yellow]=[reset]",
			SaucerHead:    "[yellow]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
