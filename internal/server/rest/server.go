// Package rest exposes the account service over HTTP. It owns route wiring,
// request validation, bearer-token authentication, and the mapping from
// business failures to status codes.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avinash6982/TripMakerWeb-BE/internal/logging"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/accounts"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/auth"
)

type Server struct {
	address  string
	logger   logging.Logger
	accounts *accounts.Service
	issuer   *auth.Issuer
}

func NewServer(address string, l logging.Logger, svc *accounts.Service, issuer *auth.Issuer) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "rest_server"),
		accounts: svc,
		issuer:   issuer,
	}
}

// Router builds the gin engine with all routes attached. Split out from Run
// so tests can drive the handlers through httptest without binding a port.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api/user")
	api.POST("/signup", s.handleSignup)
	api.POST("/login", s.handleLogin)

	authorized := api.Group("/", s.authMiddleware())
	authorized.GET("/profile", s.handleGetProfile)
	authorized.PUT("/profile", s.handleUpdateProfile)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
