package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockSummaryService))

	c, w := newContext(http.MethodGet, "/healthz", nil)
	h.Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	summary := new(mocks.MockSummaryService)
	summary.On("Status", mock.Anything).Return(domain.LedgerStatus{Driver: "bolt", StorageKey: "ksp_bottle_billing_v1"})
	h := handler.NewHealthHandler(summary)

	summary.On("Ping", mock.Anything).Return(nil).Once()
	c, w := newContext(http.MethodGet, "/readyz", nil)
	h.Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","driver":"bolt","storageKey":"ksp_bottle_billing_v1"}`, w.Body.String())

	summary.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	c, w = newContext(http.MethodGet, "/readyz", nil)
	h.Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
