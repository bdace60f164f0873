// Package collect is the receiving end of the answer form: an HTTP endpoint
// that records each submitted answer.
package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/storage"
)

// maxFormBytes bounds a submission body.
const maxFormBytes = 4 << 10

// Recorder stores received answers. *storage.Store implements it.
type Recorder interface {
	SaveResponse(r storage.Response) (int64, error)
}

// Handler serves the form endpoint.
type Handler struct {
	path  string
	field string
	rec   Recorder
	log   *log.Logger
}

// NewHandler creates a handler for cfg.Path reading cfg.Field.
func NewHandler(cfg config.CollectConfig, rec Recorder, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Handler{path: path, field: cfg.Field, rec: rec, log: logger}
}

// Routes returns the endpoint's mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(h.path, h.handleForm)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
	return mux
}

func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	answer := strings.TrimSpace(r.PostForm.Get(h.field))
	if answer == "" {
		http.Error(w, fmt.Sprintf("missing field %s", h.field), http.StatusBadRequest)
		return
	}

	id, err := h.rec.SaveResponse(storage.Response{
		Answer:     answer,
		RemoteAddr: remoteHost(r.RemoteAddr),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		h.log.Error("cannot store response", "err", err)
		http.Error(w, "cannot store response", http.StatusInternalServerError)
		return
	}

	h.log.Info("response received", "id", id, "answer", answer, "remote", remoteHost(r.RemoteAddr))
	w.WriteHeader(http.StatusOK)
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Server runs the collector until interrupted.
type Server struct {
	cfg    config.CollectConfig
	store  *storage.Store
	server *http.Server
	logger *log.Logger
}

// NewServer opens the response store and prepares the HTTP server.
func NewServer(cfg config.CollectConfig) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "valentine-collect",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	h := NewHandler(cfg, store, logger)
	return &Server{
		cfg:   cfg,
		store: store,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           h.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting collector", "address", s.cfg.Addr, "path", s.cfg.Path, "db", s.cfg.DBPath)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.store.Close()
		return fmt.Errorf("collect: %w", err)
	}
}

// Shutdown gracefully stops the server and closes the store.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}
