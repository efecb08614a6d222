package newsletter

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/urbanthreads/services/newsletter NewsletterRepo

// NewsletterRepo persists newsletter subscribers
type NewsletterRepo interface {
	// CreateIfAbsent inserts the subscriber unless the email already exists.
	// It reports whether a row was created.
	CreateIfAbsent(ctx context.Context, subscriber *models.NewsletterSubscriber) (bool, error)
	ListSubscribers(ctx context.Context, limit int) ([]models.NewsletterSubscriber, error)
}
