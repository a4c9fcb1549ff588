// Package httpserver exposes the authentication HTTP API.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mlvd/authgate/internal/errs"
	"github.com/mlvd/authgate/internal/service"
)

// Server wires the auth service into HTTP handlers.
type Server struct {
	auth service.AuthService
	log  *zap.Logger
}

// New constructs a server with injected dependencies.
func New(auth service.AuthService, log *zap.Logger) *Server {
	return &Server{auth: auth, log: log}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recover(s.log), Logging(s.log), CORS())
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.POST("/login", s.handleLogin)
	r.POST("/register", s.handleRegister)
	return r
}

type loginRequest struct {
	Tenant   string `json:"tenant"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Tenant      string `json:"tenant"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Password    string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing fields"})
		return
	}
	user, err := s.auth.Login(c.Request.Context(), req.Tenant, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing fields"})
		return
	}
	err := s.auth.Register(c.Request.Context(), service.RegisterInput{
		TenantID:    req.Tenant,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		Password:    req.Password,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// fail maps service sentinels onto stable response codes. Anything unmapped
// is an internal failure whose cause is logged but never echoed to the
// client.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing fields"})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
	case errors.Is(err, errs.ErrDisabled):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "disabled"})
	case errors.Is(err, errs.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "tenant not found"})
	case errors.Is(err, errs.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "already registered"})
	default:
		s.log.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}
