package nsq

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	nsqpkg "github.com/piresc/urbanthreads/internal/pkg/nsq"
	"github.com/piresc/urbanthreads/services/notification"
	"github.com/piresc/urbanthreads/services/notification/usecase"
)

const maxInFlight = 10

// NotificationHandler consumes queued notifications and delivers them
type NotificationHandler struct {
	deliveryUC notification.DeliveryUC
}

// NewNotificationHandler creates a new notification NSQ handler
func NewNotificationHandler(deliveryUC notification.DeliveryUC) *NotificationHandler {
	return &NotificationHandler{deliveryUC: deliveryUC}
}

// InitNSQConsumer subscribes to the notification topic. Lookupd addresses
// take precedence over a direct nsqd connection.
func (h *NotificationHandler) InitNSQConsumer(cfg models.NSQConfig) (*nsqpkg.Consumer, error) {
	consumer, err := nsqpkg.NewConsumer(cfg.NotificationTopic, cfg.NotifierChannel, maxInFlight, h.HandleNotification)
	if err != nil {
		return nil, err
	}

	switch {
	case len(cfg.LookupdAddresses) > 0:
		err = consumer.ConnectToLookupd(cfg.LookupdAddresses)
	case cfg.NSQDAddress != "":
		err = consumer.ConnectToNSQD(cfg.NSQDAddress)
	default:
		err = fmt.Errorf("no nsqd or lookupd address configured")
	}
	if err != nil {
		consumer.Stop()
		return nil, err
	}

	logger.Info("Subscribed to notification topic",
		logger.String("topic", cfg.NotificationTopic),
		logger.String("channel", cfg.NotifierChannel))
	return consumer, nil
}

// HandleNotification delivers a single message. Malformed messages are
// dropped; delivery failures are returned so the message is requeued.
func (h *NotificationHandler) HandleNotification(body []byte) error {
	ctx := context.Background()

	var n models.Notification
	if err := nsqpkg.UnmarshalMessage(body, &n); err != nil {
		logger.ErrorCtx(ctx, "Dropping malformed notification", logger.Err(err))
		return nil
	}

	logger.InfoCtx(ctx, "Received notification",
		logger.String("notification_id", n.ID),
		logger.String("type", string(n.Type)))

	if err := h.deliveryUC.Deliver(ctx, &n); err != nil {
		if errors.Is(err, usecase.ErrInvalidNotification) {
			logger.WarnCtx(ctx, "Dropping undeliverable notification",
				logger.String("notification_id", n.ID),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}
