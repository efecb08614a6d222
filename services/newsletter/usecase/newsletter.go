package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/newsletter"
)

const subscriberListLimit = 1000

// NewsletterUC implements newsletter subscriptions
type NewsletterUC struct {
	repo newsletter.NewsletterRepo
}

// NewNewsletterUC creates a new newsletter usecase
func NewNewsletterUC(repo newsletter.NewsletterRepo) *NewsletterUC {
	return &NewsletterUC{repo: repo}
}

// Subscribe adds an email to the newsletter. Subscribing twice is rejected.
func (uc *NewsletterUC) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.MessageResponse, error) {
	const op = "newsletter.Subscribe"

	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest(op, apperror.ErrInvalidEmail)
	}

	created, err := uc.repo.CreateIfAbsent(ctx, &models.NewsletterSubscriber{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, apperror.Internal(op, "Failed to subscribe", err)
	}
	if !created {
		return nil, apperror.BadRequest(op, apperror.ErrAlreadySubscribed)
	}

	logger.InfoCtx(ctx, "Newsletter subscription created", logger.String("email", utils.MaskEmail(email)))
	return &models.MessageResponse{Message: "Successfully subscribed to newsletter"}, nil
}

// ListSubscribers returns current subscribers
func (uc *NewsletterUC) ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	subscribers, err := uc.repo.ListSubscribers(ctx, subscriberListLimit)
	if err != nil {
		return nil, apperror.Internal("newsletter.ListSubscribers", "Failed to retrieve subscribers", err)
	}
	return subscribers, nil
}
