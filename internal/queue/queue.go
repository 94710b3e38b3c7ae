package queue

import "context"

const (
	// EmailQueueName is the work queue the entity-emailer service consumes.
	EmailQueueName = "filing.email"

	// EmailDLQName holds email messages the emailer rejected.
	EmailDLQName = "dlq.filing.email"
)

// Publisher publishes email messages to the emailer queue. A successful
// publish is the "send" for an EMAIL furnishing; actual SMTP delivery is the
// emailer service's concern.
type Publisher interface {
	Publish(ctx context.Context, queue string, msg EmailMessage) error
	Close() error
}
