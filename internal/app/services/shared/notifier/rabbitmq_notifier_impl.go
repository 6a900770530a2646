package notifier

import (
	"context"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/responses"
	"rips-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp091.Channel the notifier depends on.
type publisher interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQNotifier struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQNotifier opens a channel on the connection and declares the
// durable generation queue.
func NewRabbitMQNotifier(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.GenerationNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrPublishGeneration(err, queue)
	}
	notifier, err := newRabbitMQNotifier(channel, queue, logger)
	if err != nil {
		return nil, err
	}
	return notifier, nil
}

func newRabbitMQNotifier(channel publisher, queue string, logger *zap.Logger) (*rabbitMQNotifier, error) {
	_, err := channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrPublishGeneration(err, queue)
	}

	return &rabbitMQNotifier{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (n *rabbitMQNotifier) NotifyGeneration(ctx context.Context, generation *models.Generation) error {
	n.Log.Info("rabbitMQNotifier.NotifyGeneration called",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.String(constvars.LoggingQueueKey, n.Queue),
	)

	body, err := json.Marshal(responses.NewGenerationEvent(constvars.RipsGenerationEventType, generation))
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.RipsJSONContentType,
		Type:         constvars.RipsGenerationEventType,
		MessageId:    generation.ID.String(),
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":   "JSON",
			"format_version": string(generation.Version),
		},
	}

	err = n.Channel.PublishWithContext(ctx, "", n.Queue, false, false, message)
	if err != nil {
		n.Log.Error("rabbitMQNotifier.NotifyGeneration error publishing event",
			zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
			zap.Error(err),
		)
		return exceptions.ErrPublishGeneration(err, n.Queue)
	}

	return nil
}
