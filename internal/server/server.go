// Package server exposes the codec over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	feederrors "github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/feed"
	"github.com/calliehart/blasefeed/internal/wire"
)

// shutdownTimeout is the grace period for in-flight requests.
const shutdownTimeout = 10 * time.Second

// maxBodyBytes bounds one wire record. Election results are the largest
// records in the historical feed, well under this.
const maxBodyBytes = 8 << 20

// Server serves the parse and build endpoints.
type Server struct {
	log  *slog.Logger
	http *http.Server
}

// New builds a server listening on addr.
func New(addr string, log *slog.Logger) *Server {
	s := &Server{log: log}

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Post("/v1/parse", s.handleParse)
	r.Post("/v1/build", s.handleBuild)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.http.ListenAndServe()
	}()
	s.log.Info("listening", "addr", s.http.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

type errorResponse struct {
	Code     feederrors.Code   `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

// writeError renders a parse failure. Codec errors carry their own
// status; anything else is an unprocessable record.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Code: feederrors.CodeOf(err), Message: err.Error()}
	var domain *feederrors.Error
	if errors.As(err, &domain) {
		resp.Metadata = domain.Metadata
	}
	s.writeJSON(w, resp.Code.HTTPStatus(), resp)
}

func (s *Server) decodeRecord(w http.ResponseWriter, r *http.Request) (wire.Record, bool) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    feederrors.CodeInvalidRecord,
			Message: "request body is not a JSON record",
		})
		return wire.Record{}, false
	}
	rec, err := wire.Decode(raw)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    feederrors.CodeInvalidRecord,
			Message: err.Error(),
		})
		return wire.Record{}, false
	}
	return rec, true
}

type parseResponse struct {
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Occurrence  feed.Occurrence `json:"occurrence"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}
	occ, err := feed.Parse(rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rebuilt := feed.Build(occ)
	s.writeJSON(w, http.StatusOK, parseResponse{
		Kind:        rebuilt.Type.String(),
		Description: rebuilt.Description,
		Occurrence:  occ,
	})
}

type buildResponse struct {
	Match  bool        `json:"match"`
	Record wire.Record `json:"record"`
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}
	occ, err := feed.Parse(rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rebuilt := feed.Build(occ)

	canonical := rec
	wire.SortChildren(&canonical)
	want, _ := json.Marshal(canonical)
	got, _ := json.Marshal(rebuilt)

	s.writeJSON(w, http.StatusOK, buildResponse{
		Match:  string(got) == string(want),
		Record: rebuilt,
	})
}
