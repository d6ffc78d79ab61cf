package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rzbill/uniq/internal/runtime"
	"github.com/rzbill/uniq/pkg/log"
)

// Server is the REST surface over a runtime instance.
type Server struct {
	rt     *runtime.Runtime
	logger log.Logger
	srv    *http.Server
	lis    net.Listener
}

// New builds the server and its routes. A nil logger uses the runtime's.
func New(rt *runtime.Runtime, logger log.Logger) *Server {
	if logger == nil {
		logger = rt.Logger()
	}
	s := &Server{rt: rt, logger: logger.WithComponent("http")}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", s.handleHealth)
		r.Get("/statusz", s.handleStatus)
		r.Route("/uids", func(r chi.Router) {
			r.Post("/new", s.handleNewUIDs)
			r.Post("/parse", s.handleParse)
			r.Get("/wellknown/{num}", s.handleWellKnown)
		})
		r.Post("/guids/new", s.handleNewGUIDs)
	})

	s.srv = &http.Server{
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		ErrorLog:    log.ToStdLogger(s.logger, log.ErrorLevel),
	}
	return s
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("http server listening", log.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the listener. In-flight requests are not drained.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags every request, minting an id when the client sent none, and
// echoes it back in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom returns the request id tagged by the middleware, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			log.Str("method", r.Method),
			log.Str("path", r.URL.Path),
			log.Int("status", ww.Status()),
			log.Dur("took", time.Since(start)),
			log.Str("request_id", RequestIDFrom(r.Context())),
			log.Str("remote", r.RemoteAddr),
		)
	})
}
