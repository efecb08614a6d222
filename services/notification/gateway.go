package notification

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/urbanthreads/services/notification NotificationGW,Mailer

// NotificationGW hands a notification off for asynchronous delivery
type NotificationGW interface {
	Publish(ctx context.Context, n *models.Notification) error
}

// Mailer sends a rendered email
type Mailer interface {
	Send(ctx context.Context, email *models.Email) error
}
