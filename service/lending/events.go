package lending

import (
	"context"

	"moneymarket/core"
	"moneymarket/pkg/id"

	"github.com/fox-one/pkg/logger"
)

// record stores the events of a committed unit. The unit is already durable,
// so failures are logged and dropped.
func (s *service) record(ctx context.Context, events []*core.Event) {
	if len(events) == 0 {
		return
	}

	log := logger.FromContext(ctx)
	trace := id.GenTraceID()
	now := s.clock.Now()

	for idx, event := range events {
		event.TraceID = id.SubTraceID(trace, idx)
		event.CreatedAt = now

		log.WithFields(map[string]interface{}{
			"action":       event.Action,
			"user":         event.User,
			"counterparty": event.Counterparty,
			"asset":        event.AssetID,
			"amount":       event.Amount.String(),
		}).Infoln("event")

		eventsTotal.WithLabelValues(event.Action).Inc()

		if s.events == nil {
			continue
		}

		if err := s.events.Create(ctx, event); err != nil {
			log.WithError(err).WithField("trace", event.TraceID).Errorln("events.Create")
		}
	}
}
