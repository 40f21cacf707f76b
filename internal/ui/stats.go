package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayslice/internal/plan"
)

func (a *App) statsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show time-usage statistics for a day",
		Long: `Show scheduled and free minutes, per-priority totals and per-task
durations for a day.

Totals are de-overlapped: a half-hour claimed by several tasks counts
once. Priorities are counted independently, so their sum can exceed
the scheduled total when priorities overlap.`,
		Example: `  dayslice stats
  dayslice stats --date=2025-06-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			day, err := a.loadDay(ctx, date)
			if err != nil {
				return err
			}

			stats := day.Stats()

			fmt.Printf("\n  %s\n", formatHeader(day.Key))
			fmt.Println(separator())

			fmt.Printf("  Scheduled  %s\n", formatStats(formatMinutes(stats.ScheduledMinutes)))
			fmt.Printf("  Free       %s\n", formatStats(formatMinutes(stats.FreeMinutes)))

			fmt.Printf("\n  %s\n", formatHeader("BY PRIORITY"))
			for _, p := range plan.Priorities() {
				fmt.Printf("  %-8s %s\n",
					formatPriority(p, p.Label()),
					formatMinutes(stats.ByPriority[p]),
				)
			}

			if len(stats.Durations) > 0 {
				fmt.Printf("\n  %s\n", formatHeader("TASKS"))
				titleWidth := termWidth() - 32
				if titleWidth < 20 {
					titleWidth = 20
				}
				for _, d := range stats.Durations {
					label := d.Start + "-" + d.End
					if a.config.Use12Hour() {
						label = a.timeLabel(d.Start) + " - " + a.timeLabel(d.End)
					}
					fmt.Printf("  %s  %-*s %s\n",
						formatMuted(label),
						titleWidth,
						truncate(d.Title, titleWidth),
						formatMinutes(d.Minutes),
					)
				}
			}

			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to summarize (YYYY-MM-DD, default: today)")

	return cmd
}
