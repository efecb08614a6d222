package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/urbanthreads/internal/pkg/constants"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/notification"
)

// NotificationUC builds notifications and hands them to the gateway
type NotificationUC struct {
	gw  notification.NotificationGW
	cfg *models.Config
	now func() time.Time
}

// NewNotificationUC creates a new notification usecase
func NewNotificationUC(gw notification.NotificationGW, cfg *models.Config) *NotificationUC {
	return &NotificationUC{gw: gw, cfg: cfg, now: time.Now}
}

// NotifyOrderPlaced sends an order confirmation to the customer
func (uc *NotificationUC) NotifyOrderPlaced(ctx context.Context, order *models.Order) {
	if order == nil {
		return
	}
	n := uc.newNotification(models.NotificationOrderConfirmation, order.CustomerEmail, map[string]string{
		constants.DataOrderID:       order.ID,
		constants.DataCustomerEmail: order.CustomerEmail,
		constants.DataTotal:         order.Total.StringFixed(2),
		constants.DataStatus:        string(order.Status),
		constants.DataCreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
		constants.DataItems:         summarizeItems(order.Items),
	})
	uc.publish(ctx, n)
}

// NotifyCustomOrderReceived alerts the store admin about a custom design request
func (uc *NotificationUC) NotifyCustomOrderReceived(ctx context.Context, customOrder *models.CustomOrder) {
	if customOrder == nil {
		return
	}
	n := uc.newNotification(models.NotificationCustomOrder, uc.cfg.Notify.AdminEmail, map[string]string{
		constants.DataOrderID:       customOrder.ID,
		constants.DataCustomerEmail: customOrder.Email,
		constants.DataCustomText:    deref(customOrder.CustomText),
		constants.DataDescription:   deref(customOrder.Description),
		constants.DataFileName:      deref(customOrder.FileName),
		constants.DataCreatedAt:     customOrder.CreatedAt.UTC().Format(time.RFC3339),
	})
	uc.publish(ctx, n)
}

func (uc *NotificationUC) newNotification(t models.NotificationType, recipient string, data map[string]string) *models.Notification {
	return &models.Notification{
		ID:        uuid.New().String(),
		Type:      t,
		Recipient: recipient,
		Data:      data,
		CreatedAt: uc.now().UTC(),
	}
}

func (uc *NotificationUC) publish(ctx context.Context, n *models.Notification) {
	if err := uc.gw.Publish(ctx, n); err != nil {
		logger.WarnCtx(ctx, "Failed to publish notification",
			logger.String("notification_id", n.ID),
			logger.String("type", string(n.Type)),
			logger.Err(err))
		return
	}
	logger.InfoCtx(ctx, "Notification published",
		logger.String("notification_id", n.ID),
		logger.String("type", string(n.Type)))
}

func summarizeItems(items models.OrderItems) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %d x %s @ $%s", item.Quantity, item.Name, item.Price.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
