package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "2xx logs at info", status: http.StatusOK, expectedLevel: "info"},
		{name: "4xx logs at warn", status: http.StatusBadRequest, expectedLevel: "warn"},
		{name: "5xx logs at error", status: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(&buf, "debug", false)
			t.Cleanup(func() { logger.Init("info", false) })

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/scenarios", func(c *gin.Context) { c.Status(tt.status) })

			req := httptest.NewRequest(http.MethodGet, "/api/scenarios", nil)
			req.Header.Set(RequestIDHeader, "req-42")
			router.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, "req-42", entry["request_id"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/scenarios", entry["path"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}
