package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/itchyny/gojq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routerops/mikrotik-mcp/pkg/api"
	"github.com/routerops/mikrotik-mcp/pkg/logs"
	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

func deviceRecords() []map[string]interface{} {
	return []map[string]interface{}{
		{"time": "10:00:01", "topics": "system,info", "message": "router rebooted"},
		{"time": "10:00:02", "topics": "system,error", "message": "login failure for user admin"},
		{"time": "10:00:03", "topics": "dhcp,info", "message": "lease granted to 192.168.1.10"},
		{"time": "10:00:04", "topics": "firewall,warning", "message": "dropped packet from 10.0.0.5"},
	}
}

// newTestRouter backs the API with a fake RouterOS device that answers
// log/print and system endpoints.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/log/print":
			require.NoError(t, json.NewEncoder(w).Encode(deviceRecords()))
		case "/rest/system/resource/print":
			require.NoError(t, json.NewEncoder(w).Encode([]map[string]interface{}{{
				"version":         "7.14",
				"uptime":          "1w2d",
				"cpu-load":        "7",
				"total-memory":    "1073741824",
				"free-memory":     "536870912",
				"total-hdd-space": "134217728",
				"free-hdd-space":  "67108864",
			}}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)

	parts := strings.Split(strings.TrimPrefix(ts.URL, "http://"), ":")
	require.Equal(t, 2, len(parts))
	port, err := strconv.Atoi(parts[1])
	require.NoError(t, err)

	device := routeros.NewClient(routeros.Config{
		Host:     parts[0],
		Port:     port,
		Username: "admin",
		Password: "secret",
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.SetupRoute(r.Group("/api/v1"), api.Arguments{
		Device: device,
		Logs:   logs.New(device),
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetLogs(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs")
	require.Equal(t, 200, w.Code)

	entries := body["logs"].([]interface{})
	assert.Equal(t, 4, len(entries))
	meta := body["metadata"].(map[string]interface{})
	assert.Equal(t, float64(4), meta["total"])
}

func TestGetLogsWithFilter(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs?where="+url.QueryEscape(`topics~"dhcp"`))
	require.Equal(t, 200, w.Code)

	entries := body["logs"].([]interface{})
	require.Equal(t, 1, len(entries))
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "lease granted to 192.168.1.10", entry["message"])
}

func TestGetLogsInvalidFilter(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs?where=color")
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, body["message"], "Invalid filter expression")
}

func TestGetLogsInvalidLimit(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doGet(t, r, "/api/v1/logs?limit=five")
	assert.Equal(t, 400, w.Code)

	w, _ = doGet(t, r, "/api/v1/logs?limit=0")
	assert.Equal(t, 400, w.Code)
}

func TestGetLogsCount(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs?count=true&where="+url.QueryEscape(`topics~"info"`))
	require.Equal(t, 200, w.Code)
	assert.Equal(t, float64(2), body["count"])
}

func TestGetLogsBySeverity(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs/error")
	require.Equal(t, 200, w.Code)

	entries := body["logs"].([]interface{})
	require.Equal(t, 1, len(entries))
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "login failure for user admin", entry["message"])
}

func TestGetLogsUnknownSeverity(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doGet(t, r, "/api/v1/logs/critical")
	assert.Equal(t, 404, w.Code)
}

func TestGetLogsWithJQ(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/logs?query="+url.QueryEscape(`select(.message | contains("login"))`))
	require.Equal(t, 200, w.Code)

	entries := body["logs"].([]interface{})
	require.Equal(t, 1, len(entries))
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "system,error", entry["topics"])
}

func TestGetLogsInvalidJQ(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doGet(t, r, "/api/v1/logs?query="+url.QueryEscape(`.[`))
	assert.Equal(t, 400, w.Code)
}

func TestSystemHealth(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/system/health")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(50), body["memory_usage_percent"])
}

func TestStatus(t *testing.T) {
	r := newTestRouter(t)

	w, body := doGet(t, r, "/api/v1/status")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["reachable"])
}

func TestFilterByJQ(t *testing.T) {
	entries := []logs.Entry{
		{"time": "10:00:01", "topics": "system,info", "message": "first"},
		{"time": "10:00:02", "topics": "system,error", "message": "second"},
	}

	q, err := gojq.Parse(`select(.topics | contains("error"))`)
	require.NoError(t, err)

	out, err := api.FilterByJQ(entries, q)
	require.NoError(t, err)
	require.Equal(t, 1, len(out))
	assert.Equal(t, "second", out[0]["message"])

	out, err = api.FilterByJQ(entries, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, len(out))
}
