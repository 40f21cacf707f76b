package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayslice/internal/plan"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date        string
		start       string
		end         string
		description string
		priority    string
		taskColor   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to a day",
		Long: `Add a time-bounded task to a day.

Times snap onto half-hour slot boundaries: minutes round down to :00
or :30 and out-of-range hours clamp to the day. If start is after end
the pair is swapped.

Example:
  dayslice add "Write documentation" --start=09:10 --end=11:00 --priority=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := plan.NewTask(args[0], description, start, end, taskColor, priority)
			if err != nil {
				return err
			}

			ctx := context.Background()
			day, err := a.loadDay(ctx, date)
			if err != nil {
				return err
			}

			day.AddTask(t)
			if err := a.saveDay(ctx, day); err != nil {
				return err
			}

			fmt.Printf("Added task %s: %s [%s] %s %s-%s\n",
				shortID(t.ID),
				t.Title,
				formatPriority(t.Priority, t.Priority.Label()),
				day.Key,
				t.Start,
				t.End,
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to add to (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&description, "desc", "", "Longer description")
	cmd.Flags().StringVar(&priority, "priority", "normal", "Priority: urgent, high, normal or low")
	cmd.Flags().StringVar(&taskColor, "color", "", "Display color, e.g. #7287fd")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
