// Package web serves resolved templates over HTTP for --serve.
package web

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"justfetch/internal/engine"
	"justfetch/internal/errors"
	"justfetch/internal/report"
)

// RenderFunc resolves the template once without color.
type RenderFunc func(ctx context.Context) (string, error)

// ReportFunc inspects the template and collects facts for the report.
type ReportFunc func(ctx context.Context) (report.Report, error)

// Server exposes the resolved template and its facts.
type Server struct {
	render RenderFunc
	facts  engine.FactProvider
	report ReportFunc
	logger zerolog.Logger
}

// NewServer creates a Server.
func NewServer(render RenderFunc, facts engine.FactProvider, rep ReportFunc, logger zerolog.Logger) *Server {
	return &Server{render: render, facts: facts, report: rep, logger: logger}
}

// Handler returns the routes:
//
//	GET /             resolved template as text
//	GET /api/facts    facts as JSON
//	GET /api/report   template report as JSON, or text with ?format=text
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRender)
	mux.HandleFunc("GET /api/facts", s.handleFacts)
	mux.HandleFunc("GET /api/report", s.handleReport)
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "cannot listen on %s", addr).WithDetail("key", "listen")
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Serving resolved template")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	out, err := s.render(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	facts, err := s.facts.Facts(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facts)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.report(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(report.Generate(rep, r.URL.Query().Has("verbose"))))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

type errorBody struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Request failed")
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}
