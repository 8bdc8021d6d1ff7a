// Package events publishes storefront analytics events to Kafka. The
// producer is optional: when no broker is configured the service runs
// without one and checkout skips publishing.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderPlaced is emitted after the upstream accepts a checkout
type OrderPlaced struct {
	Slug        string    `json:"slug"`
	SessionID   string    `json:"sessionId"`
	TotalAmount float64   `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	PlacedAt    time.Time `json:"placedAt"`
}

// Producer writes events asynchronously through a buffered inbox so a slow
// broker never delays a checkout response.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
	logger  *zap.Logger
}

// NewProducer creates an order-event producer for the given brokers/topic
func NewProducer(brokers []string, topic string, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, 256),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
}

// Start runs the writer loop until ctx is cancelled or Close is called,
// flushing whatever is left in the inbox before exiting.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(p.inbox)
				for m := range p.inbox {
					p.write(m)
				}
				_ = p.w.Close()
				close(p.closeCh)
				return
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.w.Close()
					close(p.closeCh)
					return
				}
				p.write(m)
			}
		}
	}()
}

// PublishOrderPlaced enqueues an order-placed event. Events are dropped with
// a log line when the inbox is full; order placement never blocks on Kafka.
func (p *Producer) PublishOrderPlaced(evt OrderPlaced) {
	value, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("Failed to marshal order event", zap.Error(err))
		return
	}
	msg := kafka.Message{
		Key:   []byte(evt.Slug),
		Value: value,
		Time:  time.Now(),
	}
	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("Order event inbox full, dropping event", zap.String("slug", evt.Slug))
	}
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		p.logger.Error("Failed to write order event", zap.Error(err))
	}
}

// Close makes the writer loop flush remaining messages and exit
func (p *Producer) Close() { close(p.inbox) }

// WaitClosed blocks until the writer loop has exited
func (p *Producer) WaitClosed() { <-p.closeCh }
