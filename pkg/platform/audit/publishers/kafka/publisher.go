// Package kafka exports audit events to a Kafka topic so downstream
// compliance and SIEM consumers can subscribe without touching the database.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"idverify/pkg/platform/audit"
)

// Publisher is a write-only audit sink backed by a Kafka producer.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// New connects a producer to the given brokers. Close must be called to
// flush buffered records on shutdown.
func New(brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

// payload is the wire form of an audit event. Field names are part of the
// consumer contract.
type payload struct {
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	ClientID  string `json:"client_id,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Action    string `json:"action"`
	Decision  string `json:"decision,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Append produces the event synchronously. Events are keyed by client so a
// client's history stays ordered within a partition.
func (p *Publisher) Append(ctx context.Context, event audit.Event) error {
	body, err := json.Marshal(payload{
		Category:  string(event.Category),
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		ClientID:  event.ClientID,
		Subject:   event.Subject,
		Action:    event.Action,
		Decision:  event.Decision,
		Reason:    event.Reason,
		RequestID: event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	record := &kgo.Record{Key: []byte(event.ClientID), Value: body}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes and releases the producer.
func (p *Publisher) Close() {
	p.client.Close()
}
