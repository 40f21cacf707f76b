package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayslice/internal/plan"
)

func (a *App) noteCmd() *cobra.Command {
	var (
		date     string
		at       string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "note [title]",
		Short: "Attach a note to a slot",
		Long: `Attach a zero-duration note to the slot containing the given time.

Example:
  dayslice note "Call the dentist" --at=14:40 --priority=urgent`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := plan.NewNote(args[0], at, priority)
			if err != nil {
				return err
			}

			ctx := context.Background()
			day, err := a.loadDay(ctx, date)
			if err != nil {
				return err
			}

			day.AddNote(n)
			if err := a.saveDay(ctx, day); err != nil {
				return err
			}

			fmt.Printf("Added note %s: %s [%s] %s %s\n",
				shortID(n.ID),
				n.Title,
				formatPriority(n.Priority, n.Priority.Label()),
				day.Key,
				n.Time,
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to add to (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&at, "at", "", "Slot time (HH:MM, required)")
	cmd.Flags().StringVar(&priority, "priority", "normal", "Priority: urgent, high, normal or low")

	_ = cmd.MarkFlagRequired("at")

	return cmd
}
