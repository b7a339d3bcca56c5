package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// adminAuth accepts the admin token as a bearer token or as the admin_token cookie.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else {
			token, _ = c.Cookie("admin_token")
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			s.logger.Warn("Rejected admin request", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) requireVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.visitors == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes() {
	adminGroup := s.engine.Group("/admin")
	adminGroup.Use(s.adminAuth(), s.requireVisitors())

	adminGroup.GET("/stats", func(c *gin.Context) {
		stats, err := s.visitors.Stats(c.Request.Context())
		if err != nil {
			s.logger.Error("Error loading admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.visitors.Recent(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("Error loading visitors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"visitors": visitors})
	})

	adminGroup.POST("/cleanup", func(c *gin.Context) {
		deleted, err := s.visitors.Cleanup(c.Request.Context())
		if err != nil {
			s.logger.Error("Error cleaning up visitor data", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.visitors.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=visitor-stats.json")
		s.logger.Info("Visitor stats exported", zap.String("by", s.visitors.HashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}
