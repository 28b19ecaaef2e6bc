package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/stayloop/notify/internal/config"
	"github.com/stayloop/notify/internal/model"
)

// DispatchMessage is the transient payload carried through the dispatch
// queue. It is created at enqueue time and discarded once the delivery
// worker has persisted the notification. DedupKey is derived once at
// enqueue so redeliveries collapse into the same stored row.
type DispatchMessage struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Category   model.Category `json:"category"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Link       string         `json:"link,omitempty"`
	Image      string         `json:"image,omitempty"`
	DedupKey   string         `json:"dedup_key"`
	EnqueuedAt time.Time      `json:"enqueued_at"`
}

// DispatchQueue wires the dispatch exchange and its three queues: the main
// work queue (dead-lettering into the DLQ), a retry queue whose TTL feeds
// messages back into the main queue, and the DLQ itself, bound to the
// exchange so exhausted jobs can be parked explicitly.
type DispatchQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer

	routingKey string
	deadKey    string
}

// NewDispatchQueue declares the dispatch topology on the given channel.
func NewDispatchQueue(ch *rabbitmq.Channel, cfg *config.Config) (*DispatchQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq, err := qm.DeclareQueue(cfg.RabbitMQ.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(cfg.RabbitMQ.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.RabbitMQ.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RabbitMQ.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	if err := ch.QueueBind(dlq.Name, cfg.RabbitMQ.DeadKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the DLQ: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DispatchQueue{
		Publisher:  pub,
		Consumer:   cons,
		routingKey: cfg.RabbitMQ.RoutingKey,
		deadKey:    cfg.RabbitMQ.DeadKey,
	}, nil
}

// Publish enqueues a single dispatch job.
func (q *DispatchQueue) Publish(msg DispatchMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// PublishBatch enqueues one fanout chunk. The batch is not atomic: the
// first failed message aborts the chunk and the caller decides what to do
// with the remainder of the fanout.
func (q *DispatchQueue) PublishBatch(msgs []DispatchMessage, strategy retry.Strategy) error {
	for i, msg := range msgs {
		if err := q.Publish(msg, strategy); err != nil {
			return fmt.Errorf("failed to publish message %d of %d: %w", i+1, len(msgs), err)
		}
	}

	return nil
}

// PublishDead parks a job on the DLQ after the worker exhausted its
// persistence attempts.
func (q *DispatchQueue) PublishDead(msg DispatchMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.deadKey, "application/json", strategy)
}

// Consume decodes messages from the main queue into out until ctx is done.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- DispatchMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var msg DispatchMessage
				if err := json.Unmarshal(m, &msg); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
					continue
				}

				out <- msg
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
