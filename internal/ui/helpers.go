package ui

import (
	"context"
	"fmt"

	"dayslice/internal/dateutil"
	"dayslice/internal/plan"
)

// loadDay loads the Day for a raw --date argument (empty means today).
// The loaded day owns the session state for that date; the previous
// day's data is discarded wholesale.
func (a *App) loadDay(ctx context.Context, rawDate string) (*plan.Day, error) {
	key, err := dateutil.ParseDateKey(rawDate)
	if err != nil {
		return nil, err
	}

	rec, err := a.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading day %s: %w", key, err)
	}
	return plan.NewDayFromRecord(key, rec), nil
}

// saveDay persists the full day record.
func (a *App) saveDay(ctx context.Context, day *plan.Day) error {
	if err := a.store.Save(ctx, day.Key, day.Record()); err != nil {
		return fmt.Errorf("saving day %s: %w", day.Key, err)
	}
	return nil
}
