package dungeon

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Server exposes the dungeon demo over HTTP.
type Server struct {
	rdb    redis.UniversalClient
	graph  string
	logger *slog.Logger
	newRNG func() *rand.Rand
}

// Option configures a Server.
type Option func(*Server)

// WithGraphKey sets the RedisGraph key the dungeon is stored under.
// Defaults to "dungeon".
func WithGraphKey(key string) Option {
	return func(s *Server) {
		if key != "" {
			s.graph = key
		}
	}
}

// WithLogger sets the server's logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRandSource makes dungeon generation deterministic, for tests.
func WithRandSource(seed int64) Option {
	return func(s *Server) {
		s.newRNG = func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		}
	}
}

// NewServer creates a server backed by the given Redis client.
func NewServer(rdb redis.UniversalClient, opts ...Option) *Server {
	s := &Server{
		rdb:    rdb,
		graph:  "dungeon",
		logger: slog.Default(),
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleHealth)
	r.GET("/crawl", s.handleCrawl)
	r.PUT("/dungeon", s.handleMakeDungeon)

	return r
}

type healthResponse struct {
	Server string `json:"server"`
	Redis  string `json:"redis"`
}

func (s *Server) handleHealth(c *gin.Context) {
	health := healthResponse{Server: "ok", Redis: "ok"}

	if reply, err := s.rdb.Ping(c.Request.Context()).Result(); err != nil || reply != "PONG" {
		health.Redis = "err"
	}

	c.JSON(http.StatusOK, health)
}

type dungeonParams struct {
	Size         int `form:"size,default=10"`
	MaxGP        int `form:"maxgp,default=10"`
	MaxTreasures int `form:"max_treasures,default=2"`
}

func (s *Server) handleMakeDungeon(c *gin.Context) {
	var params dungeonParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layout, err := GenerateLayout(params.Size, params.MaxTreasures, params.MaxGP, s.newRNG())
	if err != nil {
		if errors.Is(err, ErrInvalidParam) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if err := s.rdb.Do(ctx, "GRAPH.QUERY", s.graph, clearQuery).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("generating dungeon",
		"rooms", layout.Rooms,
		"corridors", len(layout.Corridors),
		"treasures", len(layout.Treasures),
	)

	if err := s.rdb.Do(ctx, "GRAPH.QUERY", s.graph, BuildCreateQuery(layout)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

type crawlResponse struct {
	// Path is the shortest path to the most valuable treasure.
	Path string `json:"path"`
	// GP is the total gold collected along the path.
	GP int `json:"gp"`
}

func (s *Server) handleCrawl(c *gin.Context) {
	reply, err := s.rdb.Do(c.Request.Context(), "GRAPH.RO_QUERY", s.graph, crawlQuery).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	path, ok := extractScalar(reply, "path")
	if !ok {
		s.logger.Info("no path from entrance to the largest treasure")
		c.JSON(http.StatusNotFound, gin.H{"data": crawlResponse{}})
		return
	}

	s.logger.Info("treasure path found", "path", path)
	c.JSON(http.StatusOK, gin.H{"data": crawlResponse{Path: path}})
}
