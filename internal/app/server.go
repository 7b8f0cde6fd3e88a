package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	httpServer *http.Server
	Router     *gin.Engine

	addr string
	done chan error
}

func NewHTTPServer(port string, router *gin.Engine) *HTTPServer {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &HTTPServer{httpServer: srv, Router: router, done: make(chan error, 1)}
}

// Start binds the listener before returning so port errors surface at startup.
func (s *HTTPServer) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.Addr, err)
	}
	s.addr = ln.Addr().String()
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.done <- err
		}
		close(s.done)
	}()
	return nil
}

// OnShutdown registers f to run when Stop begins, while in-flight requests
// are still being drained.
func (s *HTTPServer) OnShutdown(f func()) {
	s.httpServer.RegisterOnShutdown(f)
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr is the bound address, valid after Start.
func (s *HTTPServer) Addr() string {
	return s.addr
}

func (s *HTTPServer) Component() Component {
	return Component{Name: "http", Start: s.Start, Stop: s.Stop, Done: s.done}
}
