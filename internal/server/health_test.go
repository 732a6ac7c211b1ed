package server

import (
	"net/http"
	"testing"

	"folio/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

type readiness struct {
	Status string `json:"status"`
	Checks struct {
		Database string `json:"database"`
		Redis    string `json:"redis"`
	} `json:"checks"`
}

func TestLivenessCheck(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/health/live", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"up"`)
}

func TestReadinessCheck(t *testing.T) {
	t.Run("without redis", func(t *testing.T) {
		ts := newTestServer(t)

		resp, body := ts.do(t, http.MethodGet, "/health/ready", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		r := decode[readiness](t, body)
		assert.Equal(t, "healthy", r.Status)
		assert.Equal(t, "disabled", r.Checks.Redis)
	})

	t.Run("with redis", func(t *testing.T) {
		_, rdb := newMiniredis(t)
		ts := newTestServer(t, withRedis(rdb))

		resp, body := ts.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", decode[readiness](t, body).Checks.Redis)
	})

	t.Run("redis configured but unreachable", func(t *testing.T) {
		ts := newTestServer(t, withConfig(func(cfg *config.Config) {
			cfg.RedisURL = "redis://127.0.0.1:1"
		}))

		resp, body := ts.do(t, http.MethodGet, "/health/ready", nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unavailable", decode[readiness](t, body).Checks.Redis)
	})

	t.Run("redis goes away", func(t *testing.T) {
		mr, rdb := newMiniredis(t)
		ts := newTestServer(t, withRedis(rdb))
		mr.Close()

		resp, body := ts.do(t, http.MethodGet, "/health/ready", nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unhealthy", decode[readiness](t, body).Checks.Redis)
	})

	t.Run("database closed", func(t *testing.T) {
		ts := newTestServer(t)
		ts.closeDB(t)

		resp, body := ts.do(t, http.MethodGet, "/health/ready", nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unhealthy", decode[readiness](t, body).Checks.Database)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := ts.do(t, http.MethodGet, "/api/hobbies", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "folio_database_query_latency_seconds")
}

func TestSwaggerDoc(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/api/swagger/doc.json", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/contacts")
	assert.Contains(t, string(body), "models.Profile")
}
