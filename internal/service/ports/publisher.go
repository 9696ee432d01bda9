package ports

import "context"

// EventPublisher fans booking/payment events out to external consumers
// (dashboards, notification workers). Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
