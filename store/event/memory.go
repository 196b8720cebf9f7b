package event

import (
	"context"
	"sync"
	"time"

	"moneymarket/core"
)

type memoryStore struct {
	mux    sync.Mutex
	nextID int64
	events []*core.Event
}

// Memory in process event store
func Memory() core.IEventStore {
	return &memoryStore{}
}

func (s *memoryStore) Create(ctx context.Context, event *core.Event) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	for _, e := range s.events {
		if e.TraceID == event.TraceID {
			*event = *e
			return nil
		}
	}

	s.nextID++
	event.ID = s.nextID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	e := *event
	s.events = append(s.events, &e)
	return nil
}

func (s *memoryStore) List(ctx context.Context, fromID int64, limit int) ([]*core.Event, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var events []*core.Event
	for _, e := range s.events {
		if e.ID <= fromID {
			continue
		}

		if limit > 0 && len(events) >= limit {
			break
		}

		c := *e
		events = append(events, &c)
	}

	return events, nil
}

func (s *memoryStore) DeleteByTime(ctx context.Context, t time.Time) (int64, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	kept := s.events[:0]
	for _, e := range s.events {
		if e.CreatedAt.Before(t) {
			continue
		}
		kept = append(kept, e)
	}

	n := int64(len(s.events) - len(kept))
	s.events = kept
	return n, nil
}
