// Package interaction implements user actions on content (like, save,
// share, comment, view) and the in-process event bus that fans them out to
// counter updates, the recommender's interaction log and notifications.
package interaction

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// Event describes one user action on one content item. Delta is +1 for the
// action and -1 for its undo.
type Event struct {
	UserID    int64
	ContentID int64
	CreatorID int64
	Type      dbmysql.InteractionType
	Delta     int
}

// Observer consumes interaction events. Observers must tolerate redelivery
// and must not block for long; they run on the bus worker pool.
type Observer interface {
	Name() string
	Update(event Event) error
}

// Publisher is the service-facing side of the bus.
type Publisher interface {
	Publish(event Event)
}

// EventBus fans interaction events out to subscribed observers through a
// bounded channel and a fixed worker pool. It is in-process only; events are
// lost on restart, which is acceptable for counters and notifications.
type EventBus struct {
	observers    map[string]Observer
	eventChannel chan Event
	closed       bool
	mu           sync.RWMutex
	wg           sync.WaitGroup
	logger       zerolog.Logger
}

func NewEventBus(workers, bufferSize int, logger zerolog.Logger) *EventBus {
	if workers <= 0 {
		workers = 4
	}
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	bus := &EventBus{
		observers:    make(map[string]Observer),
		eventChannel: make(chan Event, bufferSize),
		logger:       logger.With().Str("component", "interaction_bus").Logger(),
	}

	for i := 0; i < workers; i++ {
		bus.wg.Add(1)
		go bus.processEvents()
	}

	return bus
}

func (b *EventBus) Subscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers[observer.Name()] = observer
	b.logger.Info().Str("observer", observer.Name()).Msg("observer subscribed")
}

func (b *EventBus) Unsubscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, observer.Name())
}

// Publish enqueues the event for asynchronous delivery. When the channel is
// full the event is dropped with a warning rather than blocking the request.
// Publishing after Shutdown is a no-op.
func (b *EventBus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	select {
	case b.eventChannel <- event:
	default:
		b.logger.Warn().
			Str("type", string(event.Type)).
			Int64("content_id", event.ContentID).
			Msg("event channel full, dropping event")
	}
}

// Deliver invokes every observer synchronously. Used by workers and by
// tests that need deterministic delivery.
func (b *EventBus) Deliver(event Event) {
	b.mu.RLock()
	observers := make([]Observer, 0, len(b.observers))
	for _, obs := range b.observers {
		observers = append(observers, obs)
	}
	b.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			b.logger.Error().Err(err).
				Str("observer", observer.Name()).
				Str("type", string(event.Type)).
				Int64("content_id", event.ContentID).
				Msg("observer update failed")
		}
	}
}

func (b *EventBus) processEvents() {
	defer b.wg.Done()

	// the range exits once Shutdown closes the channel and the buffer is
	// drained, so no accepted event is lost
	for event := range b.eventChannel {
		b.Deliver(event)
	}
}

// Shutdown stops accepting events, drains everything already buffered and
// waits for the workers to finish. Safe to call more than once.
func (b *EventBus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.eventChannel)
	b.mu.Unlock()

	b.wg.Wait()
	b.logger.Info().Msg("event bus shutdown complete")
}
