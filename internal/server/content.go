package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
)

// Documents are re-read on every request so edits show up without a restart.

func (s *Server) handleSite(c *gin.Context) {
	site, err := s.lib.Site(c.Request.Context())
	if err != nil {
		s.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (s *Server) handleProfile(c *gin.Context) {
	p, err := s.lib.Profile()
	if err != nil {
		s.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleExperience(c *gin.Context) {
	e, err := s.lib.Experience()
	if err != nil {
		s.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) handleProjects(c *gin.Context) {
	projects, err := s.lib.Projects()
	if err != nil {
		s.contentError(c, err)
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := []content.Project{}
		for _, p := range projects {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleContact(c *gin.Context) {
	contact, err := s.lib.Contact()
	if err != nil {
		s.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// handleContactForm stores the submission and forwards it by email. A failed
// delivery is logged but the visitor still gets a success response because
// the message is kept for the admin inbox.
func (s *Server) handleContactForm(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	body := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	msg, err := s.store.SaveMessage(name, email, body)
	if err != nil {
		s.log.Error("saving contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	delivered := false
	if s.mailer != nil {
		if err := s.mailer.Send(mail.Message{Name: name, Email: email, Body: body}); err != nil {
			s.log.Warn("contact email not delivered", "id", msg.ID, "error", err)
		} else if err := s.store.MarkDelivered(msg.ID); err != nil {
			s.log.Error("marking message delivered", "id", msg.ID, "error", err)
		} else {
			delivered = true
			s.log.Info("contact email sent", "id", msg.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   "Thank you for your message! I'll get back to you soon.",
		"id":        msg.ID,
		"delivered": delivered,
	})
}
