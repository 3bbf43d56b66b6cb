// Package ui exposes the web surface of the prototype: the single-page
// frontend, the JSON API the page talks to, and the SSE progress stream.
package ui

import (
	"embed"
	"log"

	"github.com/gin-gonic/gin"

	"coanalyst/app"
	"coanalyst/internal"
	"coanalyst/internal/api"
	"coanalyst/internal/config"
	"coanalyst/ports"
)

//go:embed index.html
var embeddedFiles embed.FS

// Server is the web server wiring handlers to the application services
type Server struct {
	router  *gin.Engine
	logger  *internal.Logger
	cfg     *config.Config
	session *app.Session
	service *app.AnalysisService
	reader  ports.TableReader
	history ports.RunHistory // nil disables the history endpoint
	hub     *api.SSEHub
}

// NewServer creates the web server and registers its routes
func NewServer(
	cfg *config.Config,
	logger *internal.Logger,
	session *app.Session,
	service *app.AnalysisService,
	reader ports.TableReader,
	history ports.RunHistory,
	hub *api.SSEHub,
) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		logger:  logger,
		cfg:     cfg,
		session: session,
		service: service,
		reader:  reader,
		history: history,
		hub:     hub,
	}
	s.router.MaxMultipartMemory = cfg.Upload.MaxBytes
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	s.router.GET("/api/session", s.handleSessionStatus)
	s.router.POST("/api/dataset", s.handleUpload)
	s.router.DELETE("/api/dataset", s.handleClearDataset)
	s.router.GET("/api/methods", s.handleMethods)

	s.router.POST("/api/analysis", s.handleExecute)
	s.router.POST("/api/analysis/cancel", s.handleCancel)
	s.router.GET("/api/result", s.handleResult)
	s.router.GET("/api/result/export", s.handleExport)
	s.router.GET("/api/result/report", s.handleReport)

	s.router.GET("/api/history", s.handleHistory)
	s.router.GET("/events", s.hub.HandleSSE)
}

// Start runs the HTTP server on the configured port
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
