package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/chatwire/internal/irc"
	"github.com/danmuck/chatwire/internal/observability"
)

type parseRequest struct {
	Line string `json:"line" binding:"required"`
}

type parseResponse struct {
	Message    irc.Message `json:"message"`
	SourceNick *string     `json:"source_nick,omitempty"`
}

type composeResponse struct {
	Line string `json:"line"`
}

func registerRoutes(r *gin.Engine) {
	r.GET("/health", handleHealth)
	r.POST("/parse", handleParse)
	r.POST("/compose", handleCompose)
	r.GET("/capabilities", handleCapabilities)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(startedAt).String(),
		"service": serviceName,
		"version": version,
	})
}

func handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must carry a line"})
		return
	}

	msg, err := irc.Parse(req.Line)
	if err != nil {
		observability.RecordParse(serviceName, errorName(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errorName(err)})
		return
	}
	observability.RecordParse(serviceName, "ok")

	resp := parseResponse{Message: msg}
	if nick, ok := msg.SourceNickname(); ok {
		resp.SourceNick = &nick
	}
	c.JSON(http.StatusOK, resp)
}

func handleCompose(c *gin.Context) {
	var msg irc.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a message"})
		return
	}
	if msg.Command == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message needs a command"})
		return
	}

	observability.RecordCompose(serviceName)
	c.JSON(http.StatusOK, composeResponse{Line: msg.String()})
}

func handleCapabilities(c *gin.Context) {
	caps := irc.Capabilities()
	out := make([]gin.H, 0, len(caps))
	for _, capability := range caps {
		out = append(out, gin.H{"name": capability.String()})
	}
	c.JSON(http.StatusOK, out)
}

func errorName(err error) string {
	switch {
	case errors.Is(err, irc.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, irc.ErrMissingCommand):
		return "missing_command"
	default:
		return "error"
	}
}
