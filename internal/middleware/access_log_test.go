package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"cookbook/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Out: &buf})

	h := chimw.RequestID(AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes?q=x", nil))

	out := buf.String()
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "path=/recipes")
	assert.Contains(t, out, "status=500")
	assert.Contains(t, out, "request_id=")
}

func TestAccessLog_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Out: &buf})

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "level=info")
}
