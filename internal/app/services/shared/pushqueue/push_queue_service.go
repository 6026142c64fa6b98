package pushqueue

import (
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "push_dispatch_queue"
	DeadLetterQueueName = "push_dispatch_dlq"
)

// Service manages the RabbitMQ queues backing push delivery.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService opens a channel, declares the durable queues, sets QoS, and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// QueuedItem pairs a fetched delivery tag with its decoded dispatch.
type QueuedItem struct {
	DeliveryTag uint64
	Dispatch    contracts.PushDispatch
}

// EnqueuePushDispatch publishes a dispatch to the standard queue with persistence and waits for confirm.
func (s *Service) EnqueuePushDispatch(ctx context.Context, dispatch *contracts.PushDispatch) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("PushQueue.EnqueuePushDispatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
	)

	body, err := json.Marshal(dispatch)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, StandardQueueName, body)
}

// Reenqueue publishes the dispatch back to the tail of the standard queue after a failed attempt.
func (s *Service) Reenqueue(ctx context.Context, dispatch *contracts.PushDispatch) error {
	body, err := json.Marshal(dispatch)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, StandardQueueName, body)
}

// EnqueueToDeadQueue parks a dispatch that exhausted its retries.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, dispatch *contracts.PushDispatch) error {
	s.log.Warn("PushQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingNotificationIDKey, dispatch.NotificationID),
		zap.Int("failed_count", dispatch.FailedCount),
	)

	body, err := json.Marshal(dispatch)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, DeadLetterQueueName, body)
}

// FetchN retrieves up to N dispatches using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	n := max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var dispatch contracts.PushDispatch
		if err := json.Unmarshal(d.Body, &dispatch); err != nil {
			// Invalid JSON goes straight to the DLQ so it cannot poison the loop.
			_ = d.Ack(false)
			_ = s.publish(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Dispatch: dispatch})
	}

	return items, nil
}

// AckMessage acknowledges a dispatch by delivery tag.
func (s *Service) AckMessage(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
