package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderNotification() *models.Notification {
	return &models.Notification{
		ID:        "n-1",
		Type:      models.NotificationOrderConfirmation,
		Recipient: "jane@example.com",
		Data: map[string]string{
			"order_id":       "order-1",
			"customer_email": "jane@example.com",
			"total":          "68.50",
			"status":         "pending",
			"created_at":     "2024-03-01T10:00:00Z",
			"items":          "- 2 x Oversized Hoodie @ $28.00",
		},
	}
}

func TestRender_OrderConfirmation(t *testing.T) {
	uc := NewDeliveryUC(nil, testConfig())

	email, err := uc.Render(orderNotification())
	require.NoError(t, err)

	assert.Equal(t, "no-reply@urbanthreads.shop", email.From)
	assert.Equal(t, "jane@example.com", email.To)
	assert.Equal(t, "Order Confirmation - Urban Threads", email.Subject)
	assert.Contains(t, email.Body, "Order ID: order-1")
	assert.Contains(t, email.Body, "Total: $68.50")
	assert.Contains(t, email.Body, "Status: pending")
	assert.Contains(t, email.Body, "Items:\n- 2 x Oversized Hoodie @ $28.00")
	assert.Contains(t, email.Body, "Thank you for your order!")
}

func TestRender_CustomOrderDefaultsToNone(t *testing.T) {
	uc := NewDeliveryUC(nil, testConfig())

	email, err := uc.Render(&models.Notification{
		ID:        "n-2",
		Type:      models.NotificationCustomOrder,
		Recipient: "orders@urbanthreads.shop",
		Data: map[string]string{
			"order_id":       "custom-1",
			"customer_email": "jane@example.com",
			"custom_text":    "Stay Weird",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "New Custom T-Shirt Order Received!", email.Subject)
	assert.Contains(t, email.Body, "Custom Text: Stay Weird")
	assert.Contains(t, email.Body, "Description: None")
	assert.Contains(t, email.Body, "Design File: None")
	assert.Contains(t, email.Body, "Please contact the customer within 24 hours with a quote.")
}

func TestDeliver_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mocks.NewMockMailer(ctrl)
	uc := NewDeliveryUC(mockMailer, testConfig())

	mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email *models.Email) error {
			assert.Equal(t, "jane@example.com", email.To)
			return nil
		})

	assert.NoError(t, uc.Deliver(context.Background(), orderNotification()))
}

func TestDeliver_MailerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mocks.NewMockMailer(ctrl)
	uc := NewDeliveryUC(mockMailer, testConfig())

	mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := uc.Deliver(context.Background(), orderNotification())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidNotification))
}

func TestDeliver_InvalidNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mocks.NewMockMailer(ctrl)
	uc := NewDeliveryUC(mockMailer, testConfig())

	unknown := orderNotification()
	unknown.Type = "sms"
	err := uc.Deliver(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrInvalidNotification)

	noRecipient := orderNotification()
	noRecipient.Recipient = " "
	err = uc.Deliver(context.Background(), noRecipient)
	assert.ErrorIs(t, err, ErrInvalidNotification)
}
