package gateway

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
)

// LogGateway only logs notifications. Used when no nsqd is configured.
type LogGateway struct{}

// NewLogGateway creates a log-only notification gateway
func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

// Publish logs n and always succeeds
func (g *LogGateway) Publish(ctx context.Context, n *models.Notification) error {
	logger.InfoCtx(ctx, "Notification queued (log only)",
		logger.String("notification_id", n.ID),
		logger.String("type", string(n.Type)),
		logger.String("recipient", utils.MaskEmail(n.Recipient)))
	return nil
}

// LogMailer writes rendered emails to the application log in place of an
// SMTP or API integration
type LogMailer struct{}

// NewLogMailer creates a log-only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the email and always succeeds
func (m *LogMailer) Send(ctx context.Context, email *models.Email) error {
	logger.InfoCtx(ctx, "Email sent",
		logger.String("from", email.From),
		logger.String("to", utils.MaskEmail(email.To)),
		logger.String("subject", email.Subject),
		logger.String("body", email.Body))
	return nil
}
