// Package httpapi exposes validation and scoring over HTTP.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textgate/textgate/internal/application"
	"github.com/textgate/textgate/internal/domain"
	"github.com/textgate/textgate/internal/logger"
)

type submission struct {
	Text *string `json:"text" binding:"required"`
}

type handler struct {
	svc     *application.ScoreService
	log     logger.Logger
	maxBody int64
}

// NewRouter builds the gin engine serving:
//
//	POST /v1/validate  {"text": ...} -> verdict
//	POST /v1/score     {"text": ...} -> score result
//	GET  /healthz
//
// A maxBody of 0 leaves request bodies unbounded.
func NewRouter(svc *application.ScoreService, log logger.Logger, maxBody int64) *gin.Engine {
	h := &handler{svc: svc, log: log, maxBody: maxBody}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/validate", h.validate)
	v1.POST("/score", h.score)

	return r
}

func (h *handler) validate(c *gin.Context) {
	text, ok := h.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Validate(text))
}

func (h *handler) score(c *gin.Context) {
	text, ok := h.bind(c)
	if !ok {
		return
	}

	res, err := h.svc.Score(c.Request.Context(), text)
	if err != nil {
		if errors.Is(err, domain.ErrNoScorer) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scorer_unavailable"})
			return
		}
		h.log.Error("scoring submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// bind decodes the submission body, writing the error response itself when
// decoding fails.
func (h *handler) bind(c *gin.Context) (string, bool) {
	if h.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}

	var req submission
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload_too_large"})
			return "", false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return "", false
	}
	return *req.Text, true
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
