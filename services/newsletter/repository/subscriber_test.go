package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/newsletter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateIfAbsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"new email", 1, true},
		{"existing email", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewSubscriberRepository(db)
			sub := &models.NewsletterSubscriber{ID: "sub-1", Email: "jane@example.com", SubscribedAt: time.Now()}

			mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING")).
				WithArgs("sub-1", "jane@example.com", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			created, err := repo.CreateIfAbsent(context.Background(), sub)
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateIfAbsent_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewSubscriberRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO newsletter_subscribers")).WillReturnError(errors.New("db down"))

	_, err := repo.CreateIfAbsent(context.Background(), &models.NewsletterSubscriber{ID: "sub-1"})
	assert.Error(t, err)
}

func TestListSubscribers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewSubscriberRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM newsletter_subscribers ORDER BY subscribed_at LIMIT $1")).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "subscribed_at"}).
			AddRow("sub-1", "jane@example.com", time.Now()).
			AddRow("sub-2", "sam@example.com", time.Now()))

	subscribers, err := repo.ListSubscribers(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, subscribers, 2)
	assert.Equal(t, "sam@example.com", subscribers[1].Email)
}
