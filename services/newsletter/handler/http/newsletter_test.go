package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/newsletter/mocks"
	"github.com/stretchr/testify/assert"
)

func newNewsletterServer(t *testing.T) (*echo.Echo, *mocks.MockNewsletterUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockNewsletterUC(ctrl)
	e := echo.New()
	NewNewsletterHandler(mockUC).RegisterRoutes(e.Group("/api"))
	return e, mockUC
}

func postJSON(e *echo.Echo, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var decoded map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestSubscribe(t *testing.T) {
	e, mockUC := newNewsletterServer(t)

	mockUC.EXPECT().Subscribe(gomock.Any(), &models.SubscribeRequest{Email: "jane@example.com"}).
		Return(&models.MessageResponse{Message: "Successfully subscribed to newsletter"}, nil)

	rec, body := postJSON(e, "/api/newsletter/subscribe", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully subscribed to newsletter", body["message"])
}

func TestSubscribe_Duplicate(t *testing.T) {
	e, mockUC := newNewsletterServer(t)

	mockUC.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
		Return(nil, apperror.BadRequest("newsletter.Subscribe", apperror.ErrAlreadySubscribed))

	rec, body := postJSON(e, "/api/newsletter/subscribe", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already subscribed", body["error"])
}

func TestListSubscribers(t *testing.T) {
	e, mockUC := newNewsletterServer(t)

	mockUC.EXPECT().ListSubscribers(gomock.Any()).Return([]models.NewsletterSubscriber{{ID: "sub-1"}}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/newsletter/subscribers", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
