package newsletter

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/urbanthreads/services/newsletter NewsletterUC

// NewsletterUC defines the newsletter use cases
type NewsletterUC interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.MessageResponse, error)
	ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
}
