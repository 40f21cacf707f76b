package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayslice/internal/plan"
	"dayslice/internal/timegrid"
)

func (a *App) showCmd() *cobra.Command {
	var (
		date     string
		priority string
		full     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's slot grid",
		Long: `Show the half-hour slots of a day with the tasks covering each slot
and any notes attached to it.

A task is shown in every slot it touches, endpoints included. Empty
slots are hidden unless --full is given. The --priority flag filters
what is displayed; it never changes what is stored or counted.`,
		Example: `  dayslice show
  dayslice show --date=2025-06-01 --full
  dayslice show --priority=urgent`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShow(cmd, date, priority, full)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&priority, "priority", "", "Only display this priority")
	cmd.Flags().BoolVar(&full, "full", false, "Show all 48 slots, including empty ones")

	return cmd
}

// runShow renders the slot listing; also used by the bare root command.
func (a *App) runShow(_ *cobra.Command, date, priority string, full bool) error {
	var filter plan.Priority
	if priority != "" {
		p, err := plan.ParsePriority(priority)
		if err != nil {
			return err
		}
		filter = p
	}

	ctx := context.Background()
	day, err := a.loadDay(ctx, date)
	if err != nil {
		return err
	}

	tasks := day.Tasks()
	notes := day.Notes()
	coverage := day.Coverage()

	fmt.Printf("\n  %s\n", formatHeader(day.Key))
	fmt.Println(separator())

	if len(tasks) == 0 && len(notes) == 0 {
		fmt.Println("  Nothing planned.")
		return nil
	}

	byID := make(map[string]*plan.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	notesBySlot := make(map[int][]*plan.Note)
	for _, n := range notes {
		notesBySlot[n.Slot()] = append(notesBySlot[n.Slot()], n)
	}

	titleWidth := termWidth() - 30
	if titleWidth < 20 {
		titleWidth = 20
	}

	for s := 0; s < timegrid.SlotsPerDay; s++ {
		var lines []string

		for _, id := range coverage.TaskIDs(s) {
			t := byID[id]
			if filter != "" && t.Priority != filter {
				continue
			}
			label := fmt.Sprintf("%s  %s %s",
				formatPriority(t.Priority, truncate(t.Title, titleWidth)),
				formatMuted(t.Start+"-"+t.End),
				formatMuted(shortID(id)),
			)
			lines = append(lines, label)
		}

		for _, n := range notesBySlot[s] {
			if filter != "" && n.Priority != filter {
				continue
			}
			lines = append(lines, fmt.Sprintf("✎ %s  %s",
				formatPriority(n.Priority, truncate(n.Title, titleWidth)),
				formatMuted(shortID(n.ID)),
			))
		}

		if len(lines) == 0 && !full {
			continue
		}

		slotLabel := a.timeLabel(timegrid.SlotStart(s))
		if len(lines) == 0 {
			fmt.Printf("  %s  %s\n", slotLabel, formatMuted("·"))
			continue
		}
		for i, line := range lines {
			if i == 0 {
				fmt.Printf("  %s  %s\n", slotLabel, line)
			} else {
				fmt.Printf("  %*s  %s\n", len(slotLabel), "", line)
			}
		}
	}

	return nil
}
