package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = true

	assert.Nil(t, InitNewRelic(cfg))
}

func TestWithoutTransaction(t *testing.T) {
	ctx := context.Background()

	val, err := WithSegmentAndReturn(ctx, "segment", func() (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, val)

	called := false
	err = WithExternalSegment(ctx, "stripe", "GET", "https://api.stripe.com", func() error {
		called = true
		return errors.New("provider down")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "provider down")

	assert.NotPanics(t, func() { NoticeError(ctx, errors.New("x")) })
}

func TestTraceHandler_NoTransaction(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := TraceHandler("catalog.List", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
