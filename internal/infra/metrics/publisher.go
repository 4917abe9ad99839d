package metrics

import (
	"context"

	"labgas/internal/domain/service"
)

// instrumentedPublisher counts every publish attempt before delegating.
type instrumentedPublisher struct {
	next    service.EventPublisher
	metrics *Metrics
}

// InstrumentPublisher wraps next so each record event is counted by outcome.
func InstrumentPublisher(next service.EventPublisher, m *Metrics) service.EventPublisher {
	if m == nil {
		return next
	}

	return &instrumentedPublisher{next: next, metrics: m}
}

func (p *instrumentedPublisher) PublishRecordEvent(ctx context.Context, event *service.RecordEvent) error {
	err := p.next.PublishRecordEvent(ctx, event)
	p.metrics.ObserveRecordEvent(event.Entity, event.Action, err == nil)

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
