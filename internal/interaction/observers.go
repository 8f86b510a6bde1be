package interaction

import (
	"context"
	"fmt"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// CounterObserver applies the event's delta to the per-content aggregate
// counters.
type CounterObserver struct {
	repo Repository
}

func NewCounterObserver(repo Repository) *CounterObserver {
	return &CounterObserver{repo: repo}
}

func (o *CounterObserver) Name() string {
	return "counter_observer"
}

func (o *CounterObserver) Update(event Event) error {
	if err := o.repo.AdjustCounter(context.Background(), event.ContentID, event.Type, event.Delta); err != nil {
		return fmt.Errorf("adjust %s counter for content %d: %w", event.Type, event.ContentID, err)
	}
	return nil
}

// HistoryObserver appends to the recommender's interaction log. Only
// positive events are recorded and undo never removes a row: the log is
// append-only signal, not state.
type HistoryObserver struct {
	repo Repository
}

func NewHistoryObserver(repo Repository) *HistoryObserver {
	return &HistoryObserver{repo: repo}
}

func (o *HistoryObserver) Name() string {
	return "history_observer"
}

func (o *HistoryObserver) Update(event Event) error {
	if event.Delta <= 0 {
		return nil
	}
	// views are counted but carry no recommendation signal
	if event.Type == dbmysql.InteractionView {
		return nil
	}

	record := &dbmysql.UserContentInteraction{
		UserID:          event.UserID,
		ContentID:       event.ContentID,
		InteractionType: event.Type,
	}
	if err := o.repo.AppendHistory(context.Background(), record); err != nil {
		return fmt.Errorf("append interaction history: %w", err)
	}
	return nil
}
