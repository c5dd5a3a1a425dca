package bus

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	cfgpkg "github.com/fatflowers/marketlink/pkg/config"
)

// RoutingKeyTrigger routes notification trigger messages from the webhook
// boundary to the listener consumer.
const RoutingKeyTrigger = "notification.trigger"

// TriggerMessage carries a pending notification id across the bus.
type TriggerMessage struct {
	NotificationID string `json:"notification_id"`
}

// Publisher publishes notification triggers to the topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.SugaredLogger
}

func NewPublisher(cfg *cfgpkg.Config, log *zap.SugaredLogger) (*Publisher, error) {
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
	return &Publisher{conn: conn, channel: channel, exchange: cfg.Rabbit.Exchange, log: log}, nil
}

// PublishTrigger enqueues one trigger for the given pending notification id.
func (p *Publisher) PublishTrigger(ctx context.Context, notificationID string) error {
	body, err := json.Marshal(TriggerMessage{NotificationID: notificationID})
	if err != nil {
		return fmt.Errorf("failed to marshal trigger: %w", err)
	}
	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RoutingKeyTrigger,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish trigger: %w", err)
	}
	p.log.Infow("published notification trigger", "id", notificationID)
	return nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func declareExchange(channel *amqp.Channel, exchange string) error {
	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return nil
}
