package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/store"
)

const (
	adminCookie = "admin_token"
	// visitorRetention bounds how long hashed visitor records are kept.
	visitorRetention = 12 * 30 * 24 * time.Hour
)

// hashIP hashes a client IP with the per-process salt. The result is stable
// for one IP while the process runs and is never reversible to the address.
func (s *Server) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func equalSecret(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalSecret(token, s.adminToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records page views with hashed IPs. Static
// assets, admin pages and the privacy page are not tracked, and DNT is
// honoured.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed, ua := s.hashIP(c.ClientIP()), c.GetHeader("User-Agent")
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.store.RecordVisit(hashed, ua, path); err != nil {
				s.log.Error("recording visitor", "error", err)
			}
		}()
		c.Next()
	}
}

// CleanupOldVisitors deletes visitor records past the retention window.
func (s *Server) CleanupOldVisitors() {
	n, err := s.store.CleanupVisitors(time.Now().Add(-visitorRetention))
	if err != nil {
		s.log.Error("cleaning up visitor data", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("privacy cleanup removed old visitor records", "count", n)
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if equalSecret(username, s.admin.Username) && equalSecret(password, s.admin.Password) {
			c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
			s.log.Info("admin login successful", "client", s.hashIP(c.ClientIP()))
			c.JSON(http.StatusOK, gin.H{"message": "logged in"})
			return
		}

		s.log.Warn("failed admin login attempt", "client", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info("admin logout", "client", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats()
		if err != nil {
			s.log.Error("loading admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(200)
		if err != nil {
			s.log.Error("loading visitors", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, visitors)
	})

	admin.GET("/messages", func(c *gin.Context) {
		messages, err := s.store.Messages()
		if err != nil {
			s.log.Error("loading messages", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	admin.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := s.store.DeleteMessage(id)
		switch {
		case errors.Is(err, store.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case err != nil:
			s.log.Error("deleting message", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		default:
			s.log.Info("message deleted by admin", "id", id, "client", s.hashIP(c.ClientIP()))
			c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
		}
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		s.CleanupOldVisitors()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup completed"})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", "client", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
