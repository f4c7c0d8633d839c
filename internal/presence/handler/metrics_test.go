package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRouter(t *testing.T) {
	srv := httptest.NewServer(NewMetricsRouter())
	defer srv.Close()

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{name: "presence counters are exported", path: "/metrics", status: http.StatusOK, contains: "gochat_presence_refreshes_total"},
		{name: "expiry counter", path: "/metrics", status: http.StatusOK, contains: "gochat_presence_expiries_total"},
		{name: "health", path: "/health", status: http.StatusOK, contains: `"status":"ok"`},
		{name: "unknown path", path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tt.contains != "" {
				assert.Contains(t, string(body), tt.contains)
			}
		})
	}
}
