package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-tracker/pkg/logger"
)

// recentEvents bounds how many delivered event ids are remembered.
const recentEvents = 1024

var (
	errNoEventType   = errors.New("message without event_type header")
	errDuplicateSkip = errors.New("event already delivered")
)

// EventHandler handles a low-stock alert. Failed alerts are logged and skipped.
type EventHandler func(ctx context.Context, event LowStockAlertEvent) error

// Consumer reads low-stock alerts from a consumer group and dispatches them by event type.
// An event id that was delivered recently is not delivered again after a rebalance.
type Consumer struct {
	group   sarama.ConsumerGroup
	groupID string
	topics  []string

	mu       sync.RWMutex
	handlers map[string]EventHandler

	seenMu sync.Mutex
	seen   map[string]struct{}
	order  []string
}

// NewConsumer joins groupID on brokers
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer initialized")

	return newConsumer(group, groupID, topics), nil
}

func newConsumer(group sarama.ConsumerGroup, groupID string, topics []string) *Consumer {
	return &Consumer{
		group:    group,
		groupID:  groupID,
		topics:   topics,
		handlers: make(map[string]EventHandler),
		seen:     make(map[string]struct{}),
	}
}

// RegisterHandler routes events of eventType to handler
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.mu.Lock()
	c.handlers[eventType] = handler
	c.mu.Unlock()
}

func (c *Consumer) handler(eventType string) (EventHandler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handlers[eventType]
	return h, ok
}

// remember records id and reports whether it was new. The oldest id is
// forgotten once recentEvents are held.
func (c *Consumer) remember(id string) bool {
	if id == "" {
		return true
	}
	c.seenMu.Lock()
	defer c.seenMu.Unlock()

	if _, dup := c.seen[id]; dup {
		return false
	}
	c.seen[id] = struct{}{}
	c.order = append(c.order, id)
	if len(c.order) > recentEvents {
		delete(c.seen, c.order[0])
		c.order = c.order[1:]
	}
	return true
}

// Start consumes in the background until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	handler := &consumerGroupHandler{consumer: c}

	go func() {
		for {
			err := c.group.Consume(ctx, c.topics, handler)
			switch {
			case errors.Is(err, sarama.ErrClosedConsumerGroup):
				return
			case err != nil:
				logger.Logger.Error().Err(err).Msg("Consume session ended with error")
			}
			if ctx.Err() != nil {
				logger.Logger.Info().Msg("Consumer stopped")
				return
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			logger.Logger.Error().Err(err).Msg("Consumer group error")
		}
	}()

	logger.Logger.Info().
		Strs("topics", c.topics).
		Str("group_id", c.groupID).
		Msg("Kafka consumer started")
}

// Close leaves the consumer group
func (c *Consumer) Close() error {
	if c.group == nil {
		return nil
	}
	return c.group.Close()
}

type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks every message, handled or not; alerts are never redelivered.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		_ = h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// readHeaders splits the record headers into the event type and the trace carrier.
func readHeaders(headers []*sarama.RecordHeader) (string, propagation.MapCarrier) {
	carrier := propagation.MapCarrier{}
	eventType := ""
	for _, header := range headers {
		switch key := string(header.Key); key {
		case "traceparent", "tracestate":
			carrier[key] = string(header.Value)
		case "event_type":
			eventType = string(header.Value)
		}
	}
	return eventType, carrier
}

func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	eventType, carrier := readHeaders(message.Headers)
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	ctx, span := otel.Tracer("kafka-consumer").Start(ctx, "kafka.consume.low_stock_alert",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
			attribute.String("event.type", eventType),
		),
	)
	defer span.End()

	err := h.dispatch(ctx, span, eventType, message.Value)
	switch {
	case errors.Is(err, errDuplicateSkip):
		span.SetStatus(codes.Ok, "duplicate skipped")
		return nil
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx).Err(err).Str("topic", message.Topic).Str("event_type", eventType).Msg("Alert event dropped")
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (h *consumerGroupHandler) dispatch(ctx context.Context, span trace.Span, eventType string, body []byte) error {
	if eventType == "" {
		return errNoEventType
	}
	handler, ok := h.consumer.handler(eventType)
	if !ok {
		return fmt.Errorf("no handler for %s", eventType)
	}

	var event LowStockAlertEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	span.SetAttributes(attribute.String("event.id", event.EventID))

	if !h.consumer.remember(event.EventID) {
		logger.Info(ctx).Str("event_id", event.EventID).Msg("Skipping alert that was already delivered")
		return errDuplicateSkip
	}

	if err := handler(ctx, event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("product_name", event.ProductName).
		Msg("Alert event handled")
	return nil
}
