// Package server exposes the calculator over HTTP and a websocket session.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/rcalc/internal/config"
)

type Server struct {
	cfg      config.ServerConfig
	report   config.ReportConfig
	router   *mux.Router
	limiter  *IPRateLimiter
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config) *Server {
	s := &Server{
		cfg:     cfg.Server,
		report:  cfg.Report,
		router:  mux.NewRouter(),
		limiter: NewIPRateLimiter(rate.Limit(cfg.Server.Rate), cfg.Server.Burst),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(logRequests)
	api.Use(s.limiter.LimitMiddleware)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/calc", s.handleCalc).Methods(http.MethodPost)
	api.HandleFunc("/calc/{kind}", s.handleCalcKind).Methods(http.MethodPost)
	api.HandleFunc("/materials", s.handleMaterials).Methods(http.MethodGet)
	api.HandleFunc("/report/pdf", s.handlePDF).Methods(http.MethodPost)
	api.HandleFunc("/report/xlsx", s.handleXLSX).Methods(http.MethodPost)
	api.HandleFunc("/template.xlsx", s.handleTemplate).Methods(http.MethodGet)

	s.router.Handle("/ws", s.limiter.LimitMiddleware(http.HandlerFunc(s.serveWs)))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
}

// Handler returns the router wrapped with CORS headers
func (s *Server) Handler() http.Handler {
	return CORS(s.router)
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the request log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"remote":   clientIP(r),
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", s.cfg.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, closing active connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return <-errc
}
