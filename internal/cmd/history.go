package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"usagebar/internal/services"
)

// HistoryCmd lists the snapshots stored when history_enabled is set
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of snapshots to show" default:"20" short:"n"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	if !cli.Container.HasHistory() {
		fmt.Println("No history recorded yet.")
		fmt.Println("Set \"history_enabled\": true in the settings file to start recording.")
		return nil
	}

	snapshots, err := cli.Container.HistoryService.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(snapshots, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded yet.")
		return nil
	}

	display := cli.Container.Config.Display
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPLAN\tMODEL\tTOKENS\tCOST\tBURN RATE\tPROGRESS")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			humanize.Time(s.CapturedAt),
			s.Plan,
			s.ModelName,
			humanize.Comma(s.TokenCount),
			optional(s.Cost, func(v float64) string { return services.FormatCost(v, display) }),
			optional(s.BurnRatePerMinute, func(v float64) string { return humanize.Commaf(v) + "/min" }),
			optional(s.SessionProgress, func(v float64) string { return fmt.Sprintf("%.1f%%", v) }),
		)
	}
	return w.Flush()
}

func optional(v *float64, format func(float64) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}
