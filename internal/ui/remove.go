package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dayslice/internal/plan"
)

func (a *App) removeCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a task or note by ID",
		Long: `Remove a task or note from a day.

Accepts a full ID or an unambiguous prefix, as printed by add and show.

Example:
  dayslice remove 3f1c9a2e`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := a.loadDay(ctx, date)
			if err != nil {
				return err
			}

			id, err := resolveID(day, args[0])
			if err != nil {
				return err
			}

			removed := "task"
			if err := day.RemoveTask(id); err != nil {
				if !errors.Is(err, plan.ErrTaskNotFound) {
					return err
				}
				if err := day.RemoveNote(id); err != nil {
					return err
				}
				removed = "note"
			}

			if err := a.saveDay(ctx, day); err != nil {
				return err
			}

			fmt.Printf("Removed %s %s from %s\n", removed, shortID(id), day.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to remove from (YYYY-MM-DD, default: today)")

	return cmd
}

// resolveID expands an ID prefix against the day's tasks and notes.
// Full IDs pass through; ambiguous prefixes are an error.
func resolveID(day *plan.Day, prefix string) (string, error) {
	var matches []string
	for _, t := range day.Tasks() {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t.ID)
		}
	}
	for _, n := range day.Notes() {
		if strings.HasPrefix(n.ID, prefix) {
			matches = append(matches, n.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task or note matches %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous: matches %d entries", prefix, len(matches))
	}
}
