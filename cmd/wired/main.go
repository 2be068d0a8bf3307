package main

import (
	"flag"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danmuck/chatwire/internal/observability"
)

const (
	serviceName = "wired"
	version     = "0.1.0"
)

var startedAt = time.Now()

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := observability.InitLogger(serviceName, *debug)
	observability.RegisterMetrics()

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Middleware: keep it lean
	r.Use(gin.Recovery())
	r.Use(observability.Middleware(serviceName, logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	registerRoutes(r)

	logger.Info().Str("addr", *addr).Msg("listening")
	if err := r.Run(*addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
