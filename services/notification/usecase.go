package notification

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/urbanthreads/services/notification NotificationUC,DeliveryUC

// NotificationUC emits store notifications. Delivery is fire-and-forget:
// failures are logged and never returned to the caller.
type NotificationUC interface {
	NotifyOrderPlaced(ctx context.Context, order *models.Order)
	NotifyCustomOrderReceived(ctx context.Context, customOrder *models.CustomOrder)
}

// DeliveryUC renders and sends notifications consumed from the queue
type DeliveryUC interface {
	Deliver(ctx context.Context, n *models.Notification) error
}
