package service

import (
	"context"
	"encoding/json"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub              *gochannel.GoChannel
	topicName           string
	notificationService INotificationService
	logger              logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	notificationService INotificationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:              pubSub,
		topicName:           topicName,
		notificationService: notificationService,
		logger:              log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.StatusChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.notificationService.HandleStatusChanged(ctx, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to handle status change", map[string]interface{}{
			"feature_id": payload.FeatureId.String(),
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
