package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/config"
	"github.com/stellenwerk/jobsuche-mcp/internal/mcp/tools"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// Server wraps an MCP SDK server with an HTTP listener
type Server struct {
	logger    *logging.Logger
	config    config.Config
	resources *Resources

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs a new MCP HTTP server with all five job search
// tools registered
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobsuche-mcp",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	tools.Register(mcpServer,
		tools.WithSearchJobs(res.Search, log),
		tools.WithJobDetails(res.Search, log),
		tools.WithSearchJobsWithDetails(res.Search, log),
		tools.WithBatchSearchJobs(res.Search, log),
		tools.WithServerStatus(res.Search, log),
	)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger:    log,
		config:    cfg,
		resources: res,
		srv:       httpSrv,
	}
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")

	err := s.srv.Shutdown(ctx)
	if err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
	}

	if s.resources != nil && s.resources.Cache != nil {
		if cerr := s.resources.Cache.Close(); cerr != nil {
			s.logger.Warn("detail cache close failed", "err", cerr)
		}
	}

	if err == nil {
		s.logger.Info("MCP HTTP server shutdown complete")
	}
	return err
}
