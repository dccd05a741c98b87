package service

import (
	"context"

	"linkup/internal/domain/entity"
)

// SessionEventPublisher publishes session lifecycle events for downstream
// consumers. Delivery is best-effort: publish failures are logged by
// callers, never surfaced to the user.
type SessionEventPublisher interface {
	PublishSessionEvent(ctx context.Context, event *entity.SessionEvent) error
	Close() error
}
