package port

import "crowdfund-escrow/internal/core/domain"

// EventPublisher receives events for committed operations. Publish must
// not block the caller.
type EventPublisher interface {
	Publish(event domain.Event)
}
