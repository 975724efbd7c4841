package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdvice_Success(t *testing.T) {
	svc := newTestServices(t)
	h := NewAdviceHandler(svc.advice)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/advice", "")
	require.NoError(t, h.GetAdvice(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, "Keep saving.", resp["text"])
	assert.Equal(t, false, resp["fallback"])
	assert.NotEmpty(t, resp["generatedAt"])
	assert.Contains(t, svc.generator.Prompt(), "BTC")
}

func TestGetAdvice_ProviderFailureReturnsFallback(t *testing.T) {
	svc := newTestServices(t)
	svc.generator.Err = errors.New("quota exceeded")
	h := NewAdviceHandler(svc.advice)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/advice", "")
	require.NoError(t, h.GetAdvice(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, domain.AdviceFallback, resp["text"])
	assert.Equal(t, true, resp["fallback"])
}

func TestGetAdvice_NoProviderConfigured(t *testing.T) {
	svc := newTestServices(t)
	h := NewAdviceHandler(service.NewAdviceService(svc.snapshots, nil, time.Second))

	c, rec := newJSONContext(http.MethodPost, "/api/v1/advice", "")
	require.NoError(t, h.GetAdvice(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, true, resp["fallback"])
}
