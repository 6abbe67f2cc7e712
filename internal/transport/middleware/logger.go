package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/pkg/ctxutil"
)

// Logger logs one line per request. Server errors log at error level.
// It must run inside RequestID. Auth, running further in, reports the
// resolved principal back through the request context.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			seen := &seenPrincipal{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), seenPrincipalKey{}, seen)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if p, ok := seen.get(); ok {
				attrs = append(attrs, slog.String("user_id", p.UserID.String()), slog.String("role", p.Role.String()))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type seenPrincipalKey struct{}

// seenPrincipal records the principal Auth resolved for the request.
type seenPrincipal struct {
	mu sync.Mutex
	p  *domain.Principal
}

func (s *seenPrincipal) set(p domain.Principal) {
	s.mu.Lock()
	s.p = &p
	s.mu.Unlock()
}

func (s *seenPrincipal) get() (domain.Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p == nil {
		return domain.Principal{}, false
	}
	return *s.p, true
}

// reportPrincipal hands p to an enclosing Logger, if any.
func reportPrincipal(ctx context.Context, p domain.Principal) {
	if s, ok := ctx.Value(seenPrincipalKey{}).(*seenPrincipal); ok {
		s.set(p)
	}
}
