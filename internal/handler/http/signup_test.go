package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/prelaunch-backend/internal/service"
	"github.com/MKhiriev/prelaunch-backend/models"
)

func TestNotifyMe_Success(t *testing.T) {
	var received models.NotifyMeRequest
	signups := &mockSignupService{
		addSignupFunc: func(ctx context.Context, req models.NotifyMeRequest) error {
			received = req
			return nil
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodPost, "/notifyme", bytes.NewBufferString(`{"email":"jane@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", received.Email)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Empty(t, resp.Message)
}

func TestNotifyMe_InvalidEmail(t *testing.T) {
	signups := &mockSignupService{
		addSignupFunc: func(ctx context.Context, req models.NotifyMeRequest) error {
			return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ErrInvalidEmailAddress)
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodPost, "/notifyme", bytes.NewBufferString(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email address")
}

func TestNotifyMe_MalformedJSON(t *testing.T) {
	router := newTestHandler(&service.Services{SignupService: &mockSignupService{}}).Init()

	req := httptest.NewRequest(http.MethodPost, "/notifyme", bytes.NewBufferString(`"email"`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyMe_StorageFailure(t *testing.T) {
	signups := &mockSignupService{
		addSignupFunc: func(ctx context.Context, req models.NotifyMeRequest) error {
			return errors.New("signup storage failed: server selection timeout")
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodPost, "/notifyme", bytes.NewBufferString(`{"email":"jane@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListSignups(t *testing.T) {
	signups := &mockSignupService{
		listSignupsFunc: func(ctx context.Context) ([]models.EmailSignup, error) {
			return []models.EmailSignup{
				{Email: "first@example.com"},
				{Email: "second@example.com"},
			}, nil
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodGet, "/notifyme", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.EmailSignup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "first@example.com", list[0].Email)
	assert.Equal(t, "second@example.com", list[1].Email)
}

func TestListSignups_Empty(t *testing.T) {
	signups := &mockSignupService{
		listSignupsFunc: func(ctx context.Context) ([]models.EmailSignup, error) {
			return []models.EmailSignup{}, nil
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodGet, "/notifyme", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListSignups_StorageFailure(t *testing.T) {
	signups := &mockSignupService{
		listSignupsFunc: func(ctx context.Context) ([]models.EmailSignup, error) {
			return nil, errors.New("cursor error")
		},
	}
	router := newTestHandler(&service.Services{SignupService: signups}).Init()

	req := httptest.NewRequest(http.MethodGet, "/notifyme", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
