package api

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yt-trends/internal/config"
	"github.com/yt-trends/internal/trending"
	"github.com/yt-trends/internal/ui"
	"github.com/yt-trends/internal/youtube"
)

// Server represents the API server
type Server struct {
	router        *gin.Engine
	service       *trending.Service
	defaultRegion string
}

// NewServer creates a new API server
func NewServer(service *trending.Service, defaultRegion string) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server := &Server{
		router:        router,
		service:       service,
		defaultRegion: trending.NormalizeRegion(defaultRegion),
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	s.router.GET("/", s.getIndex)
	s.router.POST("/refresh", s.postRefresh)
	s.router.GET("/style.css", s.getStyle)

	s.router.GET("/api/trending", s.getTrending)
}

// getIndex renders the trending page, or an error banner replacing the table
// when the cycle failed.
func (s *Server) getIndex(c *gin.Context) {
	region := s.region(c)

	opts := ui.PageOptions{Region: region}
	page, err := s.service.Page(c.Request.Context(), region)
	if err != nil {
		opts.ErrorMessage = bannerMessage(err)
	} else {
		opts.Videos = page.Videos
		opts.Channels = page.Channels
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(ui.RenderTrendingPage(opts)))
}

// postRefresh drops the cached responses and sends the browser back to the
// page, which re-runs the full fetch cycle.
func (s *Server) postRefresh(c *gin.Context) {
	s.service.Refresh()
	region := trending.NormalizeRegion(c.PostForm("region"))
	if region == "" {
		region = s.defaultRegion
	}
	c.Redirect(http.StatusSeeOther, "/?region="+url.QueryEscape(region))
}

func (s *Server) getStyle(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(ui.StyleSheet()))
}

// getTrending serves the merged rows as JSON for non-browser consumers.
func (s *Server) getTrending(c *gin.Context) {
	region := s.region(c)

	page, err := s.service.Page(c.Request.Context(), region)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) region(c *gin.Context) string {
	region := trending.NormalizeRegion(c.Query("region"))
	if region == "" {
		region = s.defaultRegion
	}
	return region
}

// errorStatus maps the error taxonomy onto HTTP statuses for the JSON
// surface: the upstream code is passed through for API errors.
func errorStatus(err error) int {
	var apiErr *youtube.APIError
	var netErr *youtube.NetworkError
	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.As(err, &netErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// bannerMessage picks the user-facing text for the error banner. Upstream
// API messages are surfaced verbatim.
func bannerMessage(err error) string {
	if errors.Is(err, config.ErrMissingAPIKey) {
		return "YOUTUBE_API_KEY is not configured. Add it to your secrets directory or .env file."
	}
	return err.Error()
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)

		start := time.Now()
		c.Next()
		log.Printf("[%s] %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
