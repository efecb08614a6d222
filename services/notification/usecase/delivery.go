package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/notification"
)

// ErrInvalidNotification marks notifications that can never be delivered
var ErrInvalidNotification = errors.New("invalid notification")

// DeliveryUC renders queued notifications into emails and sends them
type DeliveryUC struct {
	mailer notification.Mailer
	cfg    *models.Config
}

// NewDeliveryUC creates a new delivery usecase
func NewDeliveryUC(mailer notification.Mailer, cfg *models.Config) *DeliveryUC {
	return &DeliveryUC{mailer: mailer, cfg: cfg}
}

// Deliver renders n and sends it to its recipient
func (uc *DeliveryUC) Deliver(ctx context.Context, n *models.Notification) error {
	if strings.TrimSpace(n.Recipient) == "" {
		return fmt.Errorf("%w: %s has no recipient", ErrInvalidNotification, n.ID)
	}

	email, err := uc.Render(n)
	if err != nil {
		return err
	}

	if err := uc.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send notification %s: %w", n.ID, err)
	}

	logger.InfoCtx(ctx, "Notification delivered",
		logger.String("notification_id", n.ID),
		logger.String("type", string(n.Type)),
		logger.String("recipient", utils.MaskEmail(n.Recipient)))
	return nil
}

// Render builds the email for n without sending it
func (uc *DeliveryUC) Render(n *models.Notification) (*models.Email, error) {
	tmpl, ok := emailTemplates[n.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidNotification, n.Type)
	}

	data := make(map[string]string, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data["store_name"] = uc.cfg.Notify.StoreName

	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}

	return &models.Email{
		From:    uc.cfg.Notify.FromAddress,
		To:      n.Recipient,
		Subject: subject.String(),
		Body:    body.String(),
	}, nil
}
