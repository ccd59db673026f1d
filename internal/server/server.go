// Package server exposes the review tool over HTTP: video streaming with
// byte-range support, trial artifacts, annotation CRUD, playback session
// control, and dashboard aggregates.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/config"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/logging"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

type Server struct {
	httpServer *http.Server
	listener   net.Listener
	addr       string
	log        zerolog.Logger

	provider   *Provider
	trials     *stores.TrialStore
	anns       *stores.AnnotationStore
	registry   *sessionRegistry
	reviewerID string
	now        func() time.Time
}

// New wires the full route table. The clock is injectable for tests; pass
// nil for time.Now.
func New(cfg *config.Config, trials *stores.TrialStore, anns *stores.AnnotationStore, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}

	s := &Server{
		addr:       cfg.Server.Addr,
		log:        logging.Component("server"),
		provider:   NewProvider(cfg.TrialsDir(), logging.Component("provider")),
		trials:     trials,
		anns:       anns,
		reviewerID: cfg.ReviewerID,
		now:        now,
	}
	s.registry = newSessionRegistry(cfg.ReviewerID, trials, anns, now)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/trials", s.handleTrialList)
	mux.HandleFunc("GET /api/trials/{trialId}/video", s.withTrialContext(s.handleVideo))
	mux.HandleFunc("GET /api/trials/{trialId}/analysis", s.withTrialContext(s.handleAnalysis))
	mux.HandleFunc("GET /api/trials/{trialId}/transcript", s.withTrialContext(s.handleTranscript))

	mux.HandleFunc("GET /api/trials/{trialId}/annotations", s.withTrialContext(s.handleAnnotationList))
	mux.HandleFunc("POST /api/trials/{trialId}/annotations", s.withTrialContext(s.handleAnnotationCreate))
	mux.HandleFunc("PATCH /api/trials/{trialId}/annotations/{annotationId}", s.withTrialContext(s.handleAnnotationUpdate))
	mux.HandleFunc("DELETE /api/trials/{trialId}/annotations/{annotationId}", s.withTrialContext(s.handleAnnotationDelete))

	mux.HandleFunc("GET /api/trials/{trialId}/session", s.withTrialContext(s.handleSessionGet))
	mux.HandleFunc("POST /api/trials/{trialId}/session/seek", s.withTrialContext(s.handleSessionSeek))
	mux.HandleFunc("POST /api/trials/{trialId}/session/play", s.withTrialContext(s.handleSessionPlay))
	mux.HandleFunc("POST /api/trials/{trialId}/session/pause", s.withTrialContext(s.handleSessionPause))
	mux.HandleFunc("POST /api/trials/{trialId}/session/rate", s.withTrialContext(s.handleSessionRate))
	mux.HandleFunc("POST /api/trials/{trialId}/session/time", s.withTrialContext(s.handleSessionTime))
	mux.HandleFunc("POST /api/trials/{trialId}/session/ready", s.withTrialContext(s.handleSessionReady))
	mux.HandleFunc("POST /api/trials/{trialId}/session/tab", s.withTrialContext(s.handleSessionTab))
	mux.HandleFunc("POST /api/trials/{trialId}/session/focus", s.withTrialContext(s.handleSessionFocus))
	mux.HandleFunc("POST /api/trials/{trialId}/session/key", s.withTrialContext(s.handleSessionKey))
	mux.HandleFunc("POST /api/trials/{trialId}/session/draft", s.withTrialContext(s.handleDraftStart))
	mux.HandleFunc("POST /api/trials/{trialId}/session/draft/end", s.withTrialContext(s.handleDraftEnd))
	mux.HandleFunc("PATCH /api/trials/{trialId}/session/draft", s.withTrialContext(s.handleDraftEdit))
	mux.HandleFunc("POST /api/trials/{trialId}/session/draft/save", s.withTrialContext(s.handleDraftSave))
	mux.HandleFunc("DELETE /api/trials/{trialId}/session/draft", s.withTrialContext(s.handleDraftCancel))

	mux.HandleFunc("GET /api/dashboard/trials", s.handleDashboardTrials)
	mux.HandleFunc("GET /api/dashboard/trials/volume", s.handleDashboardTrialVolume)
	mux.HandleFunc("GET /api/dashboard/issues", s.handleDashboardIssues)
	mux.HandleFunc("GET /api/dashboard/issues/volume", s.handleDashboardIssueVolume)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.httpServer = &http.Server{
		Handler:           s.middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routed handler stack for httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withTrialContext stamps the reviewer and trial ids onto the request
// context and rebinds the request logger to it, so every event logged for
// the request carries both ids via the context hook.
func (s *Server) withTrialContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithReviewerID(r.Context(), s.reviewerID)
		if trialID := r.PathValue("trialId"); trialID != "" {
			ctx = logging.WithTrialID(ctx, trialID)
		}
		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Ctx(ctx)
		})
		next(w, r.WithContext(ctx))
	}
}

// middleware stacks request logging and panic recovery around the mux.
func (s *Server) middleware(next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	h = hlog.RequestIDHandler("request_id", "X-Request-Id")(h)
	h = hlog.NewHandler(s.log)(h)
	return s.recoverer(h)
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panic")
				writeError(w, http.StatusInternalServerError, "internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	s.log.Info().Str("addr", listener.Addr().String()).Msg("starting review server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("review server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down review server")
	return s.httpServer.Shutdown(ctx)
}
