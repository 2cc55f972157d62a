// Package server exposes the portfolio content and contact form over HTTP
// with gin, plus a small cookie-protected admin area.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
)

// Mailer delivers contact-form messages.
type Mailer interface {
	Send(m mail.Message) error
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Library *content.Library
	Store   *store.Store
	Mailer  Mailer
	Admin   config.AdminConfig
	Logger  *slog.Logger
}

// Server holds the HTTP handlers' shared state.
type Server struct {
	lib    *content.Library
	store  *store.Store
	mailer Mailer
	admin  config.AdminConfig
	log    *slog.Logger

	adminToken  string
	hashingSalt string

	// background visitor writes
	wg sync.WaitGroup
}

// New creates a Server. A fresh admin token and IP hashing salt are generated
// per process.
func New(d Deps) (*Server, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		lib:         d.Library,
		store:       d.Store,
		mailer:      d.Mailer,
		admin:       d.Admin,
		log:         logger,
		adminToken:  token,
		hashingSalt: salt,
	}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Wait blocks until background visitor writes have finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()
	r.Use(s.visitorTrackingMiddleware())

	r.GET("/", s.handleSite)
	api := r.Group("/api")
	api.GET("/site", s.handleSite)
	api.GET("/profile", s.handleProfile)
	api.GET("/experience", s.handleExperience)
	api.GET("/projects", s.handleProjects)
	api.GET("/contact", s.handleContact)

	r.POST("/contact", s.handleContactForm)

	r.GET("/privacy", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":     "Privacy Policy",
			"tracking":  "IP addresses are stored only as salted SHA-256 hashes.",
			"retention": "Visitor records older than 12 months are deleted.",
			"dnt":       "Requests carrying DNT: 1 are not tracked.",
		})
	})

	s.setupAdminRoutes(r)
	return r
}

// contentError logs a document read failure and answers 500.
func (s *Server) contentError(c *gin.Context, err error) {
	s.log.Error("loading content", "path", c.Request.URL.Path, "error", err)
	status := http.StatusInternalServerError
	if errors.Is(err, content.ErrMissingDocument) {
		c.JSON(status, gin.H{"error": "content unavailable"})
		return
	}
	c.JSON(status, gin.H{"error": "internal error"})
}
