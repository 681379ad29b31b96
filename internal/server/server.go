package server

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/config"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/dispatch"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/provider"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/store"
)

const requestIDHeader = "X-Request-ID"

const helloText = "Hi! I'm FinanceGuru. Ask me anything about budgeting, saving, debt or investing."

type Server struct {
	cfg        config.ServerConfig
	dispatcher *dispatch.Dispatcher
	mem        *store.MemoryStore
	log        *logrus.Logger
}

func New(cfg config.ServerConfig, d *dispatch.Dispatcher, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	mem := store.NewMemoryStore()
	store.SeedAssistantHello(mem, helloText)
	return &Server{cfg: cfg, dispatcher: d, mem: mem, log: log}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog(), s.cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().Format(time.RFC3339)})
	})

	r.GET("/api/modes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"modes": s.dispatcher.Modes(), "default": internal.ModeLocal})
	})

	r.POST("/api/advice", s.handleAdvice)

	r.GET("/api/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, internal.ChatHistory{Messages: s.mem.All()})
	})
	r.POST("/api/messages", s.handleMessage)
	r.POST("/api/reset", func(c *gin.Context) {
		s.mem.Reset()
		store.SeedAssistantHello(s.mem, "I've reset the conversation. How can I help?")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.WithField("port", s.cfg.Port).Info("starting advice server")
	return s.Handler().Run(":" + s.cfg.Port)
}

func (s *Server) handleAdvice(c *gin.Context) {
	var req internal.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	mode, err := s.dispatcher.ParseMode(string(req.Mode))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := provider.ValidateHistory(req.History); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := s.dispatcher.Dispatch(c.Request.Context(), req.Message, req.History, mode)
	c.JSON(http.StatusOK, internal.AdviceResponse{Reply: res.Text, Mode: res.Source, Topic: res.Topic})
}

// handleMessage replies within the server's running transcript.
func (s *Server) handleMessage(c *gin.Context) {
	var req internal.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	mode, err := s.dispatcher.ParseMode(string(req.Mode))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := s.dispatcher.Dispatch(c.Request.Context(), req.Content, s.mem.History(), mode)
	s.mem.AppendExchange(req.Content, res.Text)

	c.JSON(http.StatusOK, internal.SendMessageResponse{
		Reply: internal.Message{Role: internal.RoleAssistant, Content: res.Text, CreatedAt: time.Now()},
		Mode:  res.Source,
	})
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"request_id": c.GetString(requestIDHeader),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		}).Info("request handled")
	}
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
