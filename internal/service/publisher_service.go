package service

import (
	"context"
	"encoding/json"
	"fmt"

	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService emits product view events for async tracking. Publishing
// is best effort: a failed publish never fails the user-facing action.
type IPublisherService interface {
	PublishProductViewed(ctx context.Context, event *dto.ProductViewedMessage) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, logger logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

func (ps *publisherService) PublishProductViewed(ctx context.Context, event *dto.ProductViewedMessage) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.logger.Error("publisher", "failed to publish product view", map[string]interface{}{
			"product_id": event.ProductId,
			"error":      err.Error(),
		})
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
