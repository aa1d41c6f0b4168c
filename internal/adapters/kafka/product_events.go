package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gimie/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const EventProductCreated = "product.created"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProductCreatedEvent is the payload published after a product is stored.
type ProductCreatedEvent struct {
	EventID    string           `json:"event_id"`
	Type       string           `json:"type"`
	ProductID  int64            `json:"product_id"`
	URL        string           `json:"url"`
	Site       string           `json:"site"`
	Currency   domain.Code      `json:"currency"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Price      string           `json:"price"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type ProductPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func (p *ProductPublisher) ProductCreated(ctx context.Context, product domain.Product) error {
	event := ProductCreatedEvent{
		EventID:    uuid.NewString(),
		Type:       EventProductCreated,
		ProductID:  product.ID,
		URL:        product.URL,
		Site:       product.Site,
		Currency:   product.Currency,
		Amount:     product.Amount,
		Price:      product.Price,
		OccurredAt: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", EventProductCreated, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(product.ID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventProductCreated)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event for product %d: %w", EventProductCreated, product.ID, err)
	}
	return nil
}

func (p *ProductPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	logrus.Info("Closing kafka product publisher")
	return p.writer.Close()
}

func NewProductPublisher(brokers []string, topic string) *ProductPublisher {
	return newProductPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	})
}

func newProductPublisher(w messageWriter) *ProductPublisher {
	return &ProductPublisher{writer: w, now: time.Now}
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) ProductCreated(context.Context, domain.Product) error { return nil }

func (NoopPublisher) Close() error { return nil }
