// Package audit publishes transaction outcomes to the audit trail.
package audit

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/pkg/nsq"
)

// Publisher emits transaction events to an NSQ topic
type Publisher struct {
	producer *nsq.Producer
	topic    string
}

// NewPublisher creates an audit publisher on the given topic
func NewPublisher(producer *nsq.Producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishTransactionEvent publishes an audit event. Publishing is
// best-effort: a broker failure is logged, never propagated, because the
// transaction outcome has already been decided.
func (p *Publisher) PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) {
	if err := p.producer.Publish(p.topic, event); err != nil {
		logger.Error("Failed to publish transaction audit event",
			logger.String("type", event.Type),
			logger.String("merchant_ref_no", event.MerchantRefNo),
			logger.Err(err))
	}
}
