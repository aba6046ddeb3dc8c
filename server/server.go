// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/coreos/pkg/capnslog"
	"golang.org/x/sync/errgroup"

	"github.com/flatcar/fileserve/network/neterror"
)

var plog = capnslog.NewPackageLogger("github.com/flatcar/fileserve", "server")

// State is the lifecycle position of a Server.
type State int

const (
	StateListening State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateListening:
		return "LISTENING"
	case StateStopped:
		return "STOPPED"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Server serves a directory tree over HTTP from a single listening
// socket.
type Server struct {
	cfg Config
	ln  net.Listener
	srv *http.Server

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// Listen binds the socket described by cfg and returns a Server in the
// listening state. Requests are not answered until Serve is called.
func Listen(cfg Config) (*Server, error) {
	addr := cfg.ListenAddr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	plog.Infof("Listening on %s, serving %s", ln.Addr(), cfg.Root)

	return &Server{
		cfg: cfg,
		ln:  ln,
		srv: &http.Server{
			Handler: LogRequests(NewFileHandler(cfg.Root)),
		},
		state: StateListening,
		done:  make(chan struct{}),
	}, nil
}

// Addr is the address the listening socket is bound to.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// URL is the address clients should be pointed at. An unspecified bind
// address is presented as localhost.
func (s *Server) URL() string {
	host := s.cfg.Address
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	port := strconv.Itoa(s.cfg.Port)
	if tcp, ok := s.ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Serve answers requests until ctx is cancelled or Close is called,
// then closes the listening socket. It returns nil after either of
// those and the accept loop error otherwise.
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.srv.Serve(s.ln)
		if errors.Is(err, http.ErrServerClosed) || (neterror.IsClosed(err) && s.State() == StateStopped) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", s.ln.Addr(), err)
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.done:
		}
		return s.Close()
	})

	return g.Wait()
}

// Close stops the server and releases the listening socket. Responses
// still being written are cut off. Calling Close more than once is safe.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateStopped {
		return nil
	}
	s.state = StateStopped
	close(s.done)

	err := s.srv.Close()
	// http.Server only tracks the listener once Serve has started.
	if lerr := s.ln.Close(); lerr != nil && !neterror.IsClosed(lerr) && err == nil {
		err = lerr
	}
	if err != nil {
		return fmt.Errorf("closing %s: %w", s.ln.Addr(), err)
	}
	plog.Infof("Stopped listening on %s", s.ln.Addr())
	return nil
}
