package dungeon

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	// parameter validation happens before Redis is touched, so a nil
	// client is fine for these tests
	return NewServer(nil,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithRandSource(1),
	)
}

func TestMakeDungeon_InvalidSize(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodPut, "/dungeon?size=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "size must be positive")
}

func TestMakeDungeon_InvalidMaxGP(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodPut, "/dungeon?maxgp=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMakeDungeon_MalformedQuery(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodPut, "/dungeon?size=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes(t *testing.T) {
	router := newTestServer().Router()

	routes := router.Routes()
	require.Len(t, routes, 3)

	paths := make(map[string]string, len(routes))
	for _, r := range routes {
		paths[r.Path] = r.Method
	}

	assert.Equal(t, http.MethodGet, paths["/"])
	assert.Equal(t, http.MethodGet, paths["/crawl"])
	assert.Equal(t, http.MethodPut, paths["/dungeon"])
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "redis://127.0.0.1:6379/", cfg.RedisURL)
	assert.Equal(t, "dungeon", cfg.GraphKey)
}
