package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yt-optimizer/internal/metadata"
	"github.com/yt-optimizer/internal/scraper"
)

// Server represents the API server
type Server struct {
	router   *gin.Engine
	metadata *metadata.Service
	scraper  *scraper.Scraper
	timeout  time.Duration
}

// NewServer creates a new API server
func NewServer(svc *metadata.Service, scr *scraper.Scraper, timeout time.Duration) *Server {
	router := gin.Default()
	router.Use(cors.Default())

	server := &Server{
		router:   router,
		metadata: svc,
		scraper:  scr,
		timeout:  timeout,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/", s.root)
	s.router.GET("/api/generate", s.generateMetadata)
	s.router.GET("/api/tags-extract", s.extractTags)
	s.router.GET("/api/kgr-ratio", s.generateKGR)
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// generateMetadata handles requests to generate a title, description, tags,
// and the analysis blocks for a topic.
func (s *Server) generateMetadata(c *gin.Context) {
	prompt := c.Query("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A parameter prompt missing for generate title, desctription, tags etc., useage: /api/generate?prompt=How To Make Money On Online",
		})
		return
	}

	logrus.WithField("prompt", prompt).Info("Generating video metadata")

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	response := s.metadata.Generate(ctx, prompt)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

// extractTags handles requests to recover a video's tags from its watch
// page. Scrape failures come back as a structured success:false value inside
// a 200 response.
func (s *Server) extractTags(c *gin.Context) {
	videoURL := c.Query("videoId")
	if videoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	result := s.scraper.ExtractTags(ctx, videoURL)
	if !result.Success {
		logrus.WithFields(logrus.Fields{
			"videoId": videoURL,
			"message": result.Message,
		}).Warn("Tag extraction failed")
	}

	c.JSON(http.StatusOK, gin.H{"tags": result})
}

// generateKGR handles requests for high-value keyword tags.
func (s *Server) generateKGR(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keyword topic is required"})
		return
	}

	logrus.WithField("keyword", keyword).Info("Generating KGR tags")

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	kgr := s.metadata.GenerateKGRTags(ctx, keyword)
	c.JSON(http.StatusOK, gin.H{"kgr": kgr})
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
