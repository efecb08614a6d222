package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/urbanthreads/internal/pkg/constants"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/notification/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Notify: models.NotificationConfig{
			AdminEmail:  "orders@urbanthreads.shop",
			FromAddress: "no-reply@urbanthreads.shop",
			StoreName:   "Urban Threads",
		},
	}
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:            "order-1",
		CustomerEmail: "jane@example.com",
		Status:        models.OrderStatusPending,
		Total:         decimal.RequireFromString("68.5"),
		CreatedAt:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Items: models.OrderItems{
			{ProductID: 1, Name: "Oversized Hoodie", Price: decimal.RequireFromString("28"), Quantity: 2},
			{ProductID: 2, Name: "Bucket Hat", Price: decimal.RequireFromString("12.5"), Quantity: 1},
		},
	}
}

func TestNotifyOrderPlaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockGW, testConfig())

	var published *models.Notification
	mockGW.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *models.Notification) error {
			published = n
			return nil
		})

	uc.NotifyOrderPlaced(context.Background(), sampleOrder())

	require.NotNil(t, published)
	assert.NotEmpty(t, published.ID)
	assert.Equal(t, models.NotificationOrderConfirmation, published.Type)
	assert.Equal(t, "jane@example.com", published.Recipient)
	assert.Equal(t, "order-1", published.Data[constants.DataOrderID])
	assert.Equal(t, "68.50", published.Data[constants.DataTotal])
	assert.Equal(t, "pending", published.Data[constants.DataStatus])
	assert.Equal(t, "2024-03-01T10:00:00Z", published.Data[constants.DataCreatedAt])
	assert.Equal(t, "- 2 x Oversized Hoodie @ $28.00\n- 1 x Bucket Hat @ $12.50", published.Data[constants.DataItems])
}

func TestNotifyCustomOrderReceived_GoesToAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockGW, testConfig())

	text := "Stay Weird"
	var published *models.Notification
	mockGW.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *models.Notification) error {
			published = n
			return nil
		})

	uc.NotifyCustomOrderReceived(context.Background(), &models.CustomOrder{
		ID:         "custom-1",
		Email:      "jane@example.com",
		CustomText: &text,
	})

	require.NotNil(t, published)
	assert.Equal(t, models.NotificationCustomOrder, published.Type)
	assert.Equal(t, "orders@urbanthreads.shop", published.Recipient)
	assert.Equal(t, "jane@example.com", published.Data[constants.DataCustomerEmail])
	assert.Equal(t, "Stay Weird", published.Data[constants.DataCustomText])
	assert.Equal(t, "", published.Data[constants.DataDescription])
}

func TestNotify_PublishErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockGW, testConfig())

	mockGW.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))

	assert.NotPanics(t, func() {
		uc.NotifyOrderPlaced(context.Background(), sampleOrder())
	})
}

func TestNotify_NilInputsAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockGW, testConfig())

	uc.NotifyOrderPlaced(context.Background(), nil)
	uc.NotifyCustomOrderReceived(context.Background(), nil)
}
