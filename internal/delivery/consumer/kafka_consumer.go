// Package consumer reads marketplace events from kafka for the notifier.
package consumer

import (
	"context"
	"log/slog"
	"time"

	"localharvest/config"
	"localharvest/internal/delivery"
	"localharvest/internal/delivery/worker/handler"
	"localharvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

const (
	initialRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

// recordClient is the part of *kgo.Client the consumer uses.
type recordClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	AllowRebalance()
	Close()
}

type dispatcher interface {
	Dispatch(ctx context.Context, data []byte, attributes map[string]string) error
}

// kafkaConsumer commits a record only once it has been handled. Retryable
// failures are retried in place, which holds back the rest of the partition.
type kafkaConsumer struct {
	client     recordClient
	dispatcher dispatcher
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

type KafkaConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Dispatcher *handler.EventDispatcher
	Logger     *slog.Logger
}

func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	kafkaCfg := params.Config.PubSub.Kafka
	if len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" || kafkaCfg.GroupID == "" {
		return nil, errors.New("kafka brokers, topic and groupId are required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(kafkaCfg.Brokers...),
		kgo.ConsumerGroup(kafkaCfg.GroupID),
		kgo.ConsumeTopics(kafkaCfg.Topic),
		kgo.DisableAutoCommit(),
		kgo.BlockRebalanceOnPoll(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer")
	}

	c := &kafkaConsumer{
		client:     client,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
		sleep:      sleepContext,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing kafka consumer")
			client.Close()

			return nil
		},
	})

	params.Logger.Info("Kafka consumer initialized",
		slog.Any("brokers", kafkaCfg.Brokers),
		slog.String("topic", kafkaCfg.Topic),
		slog.String("group_id", kafkaCfg.GroupID),
	)

	return c, nil
}

// Serve polls until ctx is cancelled or the client is closed.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("[Kafka] Fetch failed",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.Any("error", err),
			)
		})

		handled := make([]*kgo.Record, 0, fetches.NumRecords())
		fetches.EachRecord(func(record *kgo.Record) {
			if c.handleRecord(ctx, record) {
				handled = append(handled, record)
			}
		})

		if len(handled) > 0 {
			if err := c.client.CommitRecords(ctx, handled...); err != nil {
				c.logger.Error("[Kafka] Commit failed", slog.Any("error", err))
			}
		}

		c.client.AllowRebalance()
	}
}

// handleRecord reports whether the record may be committed. It is false only
// when ctx ends while a retryable failure is being retried.
func (c *kafkaConsumer) handleRecord(ctx context.Context, record *kgo.Record) bool {
	attributes := make(map[string]string, len(record.Headers))
	for _, header := range record.Headers {
		attributes[header.Key] = string(header.Value)
	}

	delay := initialRetryDelay
	for {
		err := c.dispatcher.Dispatch(ctx, record.Value, attributes)
		if err == nil || !usecase.IsRetryable(err) {
			return true
		}

		c.logger.Warn("[Kafka] Retrying event",
			slog.Int("partition", int(record.Partition)),
			slog.Int64("offset", record.Offset),
			slog.Duration("delay", delay),
		)

		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return false
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
