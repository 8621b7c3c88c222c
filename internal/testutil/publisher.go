package testutil

import (
	"sync"

	"github.com/flashmart/checkout-service/internal/domain"
)

// RecordingPublisher captures order events. Usecases publish from
// fire-and-forget goroutines, so assertions should poll Events rather than
// expect an event synchronously.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

func (p *RecordingPublisher) PublishOrderEvent(event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *RecordingPublisher) Events() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OrderEvent(nil), p.events...)
}
