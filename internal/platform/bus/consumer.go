package bus

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	cfgpkg "github.com/fatflowers/marketlink/pkg/config"
)

// Consumer pulls notification triggers off the queue and hands each one to
// the listener in its own goroutine. Deliveries are acked regardless of
// processing outcome: retain-vs-delete of the pending row is the listener's
// decision, not the broker's.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	lst     *listener.Listener
	log     *zap.SugaredLogger
	done    chan struct{}
}

func NewConsumer(cfg *cfgpkg.Config, lst *listener.Listener, log *zap.SugaredLogger) (*Consumer, error) {
	conn, err := amqp.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	if err := declareExchange(channel, cfg.Rabbit.Exchange); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	if _, err := channel.QueueDeclare(cfg.Rabbit.Queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.Rabbit.Queue, err)
	}
	if err := channel.QueueBind(cfg.Rabbit.Queue, RoutingKeyTrigger, cfg.Rabbit.Exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue %s: %w", cfg.Rabbit.Queue, err)
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   cfg.Rabbit.Queue,
		lst:     lst,
		log:     log,
		done:    make(chan struct{}),
	}, nil
}

// Start begins consuming. Each trigger is handled concurrently and
// independently; no ordering is guaranteed between distinct trigger ids.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	go func() {
		defer close(c.done)
		for d := range deliveries {
			var msg TriggerMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				c.log.Errorw("malformed trigger message", "error", err.Error())
				_ = d.Ack(false)
				continue
			}
			go func(delivery amqp.Delivery, id string) {
				c.lst.Handle(context.Background(), id)
				_ = delivery.Ack(false)
			}(d, msg.NotificationID)
		}
	}()

	c.log.Infow("notification trigger consumer started", "queue", c.queue)
	return nil
}

func (c *Consumer) Stop() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	<-c.done
}
