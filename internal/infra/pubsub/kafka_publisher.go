package pubsub

import (
	"context"
	"log/slog"

	"localharvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaPublisher writes events to a kafka topic keyed by order id, so every
// event for one order lands on the same partition in publish order.
type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

func (p *kafkaPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic:   p.topic,
		Key:     []byte(event.OrderID),
		Value:   data,
		Headers: recordHeaders(eventAttributes(event)),
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrapf(err, "failed to produce %s", event.Type)
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published",
		slog.String("event_type", string(event.Type)),
		slog.String("order_ref", event.OrderRef),
		slog.Int("partition", int(record.Partition)),
		slog.Int64("offset", record.Offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	p.client.Close()

	return nil
}

func recordHeaders(attributes map[string]string) []kgo.RecordHeader {
	headers := make([]kgo.RecordHeader, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kgo.RecordHeader{Key: key, Value: []byte(value)})
	}

	return headers
}
