package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Publisher публикует события бронирования в RabbitMQ.
// Соединение устанавливается на каждую публикацию: события редкие,
// а переподключение после обрыва получается бесплатно.
type Publisher struct {
	url string
	log Logger
}

// NewPublisher создает новый publisher событий бронирования
func NewPublisher(url string, log Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// Publish публикует событие в указанную очередь. Очередь объявляется
// durable и идемпотентно, сообщения помечаются persistent.
func (p *Publisher) Publish(ctx context.Context, queueName string, event BookingEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("queue: dial failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("queue: channel open failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.log.Warn("queue: declare failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("queue: marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.log.Warn("queue: publish failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: publish: %w", err)
	}

	p.log.Info("queue: published event to %s: booking_id=%d", queueName, event.BookingID)
	return nil
}

// NoopPublisher заглушка, используется когда брокер выключен в конфигурации
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(_ context.Context, _ string, _ BookingEvent) error {
	return nil
}
