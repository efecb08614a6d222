package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/models"
)

// SubscriberRepo stores newsletter subscribers in PostgreSQL
type SubscriberRepo struct {
	db *sqlx.DB
}

// NewSubscriberRepository creates a PostgreSQL-backed subscriber repository
func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepo {
	return &SubscriberRepo{db: db}
}

// CreateIfAbsent relies on the unique email index so that concurrent
// subscriptions of the same address create exactly one row
func (r *SubscriberRepo) CreateIfAbsent(ctx context.Context, subscriber *models.NewsletterSubscriber) (bool, error) {
	query := `INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, subscriber.ID, subscriber.Email, subscriber.SubscribedAt)
	if err != nil {
		return false, fmt.Errorf("failed to create subscriber: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

// ListSubscribers returns subscribers in subscription order
func (r *SubscriberRepo) ListSubscribers(ctx context.Context, limit int) ([]models.NewsletterSubscriber, error) {
	subscribers := []models.NewsletterSubscriber{}
	query := `SELECT id, email, subscribed_at FROM newsletter_subscribers ORDER BY subscribed_at LIMIT $1`
	if err := r.db.SelectContext(ctx, &subscribers, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}
