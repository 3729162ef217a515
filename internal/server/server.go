package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppiankov/factdash/internal/logger"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/pipeline"
	"github.com/ppiankov/factdash/internal/session"
	"github.com/ppiankov/factdash/internal/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultRangeDays is the length of the date range used when none is given
const DefaultRangeDays = 30

// Runner executes the two pipelines
type Runner interface {
	Collect(ctx context.Context, start, end time.Time, progress pipeline.ProgressFunc) (*pipeline.CollectResult, error)
	Verify(ctx context.Context, claims []model.ClaimRecord, progress worker.ProgressFunc) []model.VerifiedClaim
}

// Server is the dashboard HTTP API around one session
type Server struct {
	runner  Runner
	session *session.Session

	// run serializes pipeline actions so only one mutates the session at a time
	run sync.Mutex
	now func() time.Time
}

// NewServer creates a server with a fresh session
func NewServer(runner Runner) *Server {
	return &Server{
		runner:  runner,
		session: session.New(),
		now:     time.Now,
	}
}

// Session returns the session served by s
func (s *Server) Session() *session.Session {
	return s.session
}

// Handler builds the gin engine with all routes registered
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger())
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the API on r
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/claims/collect", s.collect)
		v1.POST("/claims/verify", s.verify)
		v1.GET("/claims", s.listClaims)
		v1.GET("/claims.csv", s.claimsCSV)
		v1.GET("/verified.csv", s.verifiedCSV)
		v1.GET("/summary", s.summary)
	}
}

// ListenAndServe serves the API on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", addr).Info("dashboard API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
