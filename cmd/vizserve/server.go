package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// newRouter builds the read-only frame API over dataDir. Recorded
// documents live at <dataDir>/<year>/<day>/<id>.json and are served
// byte-for-byte; the player consumes them as-is.
func newRouter(dataDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())

	r.GET("/api/viz/:year/:day/:id", func(c *gin.Context) {
		year, errY := strconv.Atoi(c.Param("year"))
		day, errD := strconv.Atoi(c.Param("day"))
		id := c.Param("id")
		if errY != nil || errD != nil || !validID(id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad year, day or id"})
			return
		}
		path := filepath.Join(dataDir, strconv.Itoa(year), strconv.Itoa(day), id+".json")
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such visualization"})
			return
		}
		if err != nil {
			slog.Error("reading visualization", "path", path, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// validID accepts only names that cannot escape the data directory.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		t0 := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(t0).Round(time.Microsecond))
	}
}
