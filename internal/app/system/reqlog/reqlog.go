// Package reqlog stamps requests with an ID and logs each one with zap.
package reqlog

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

type ctxKeyRequestID struct{}

// RequestIDFrom returns the request ID stored in ctx.
func RequestIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return s, ok && s != ""
}

// RequestID ensures each request has an ID. With trustHeader an incoming
// X-Request-ID is reused; otherwise a new uuid is always generated.
func RequestID(trustHeader bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := ""
			if trustHeader {
				rid = r.Header.Get(HeaderRequestID)
			}
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, rid)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID{}, rid)))
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Logger logs method, path, status, bytes and duration for every request.
// Mount it inside LoadSessionUser so the user id is available.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r)
			if rw.status == 0 {
				rw.status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.status),
				zap.Int("bytes", rw.bytes),
				zap.Duration("duration", time.Since(start)),
			}
			if rid, ok := RequestIDFrom(r.Context()); ok {
				fields = append(fields, zap.String("request_id", rid))
			}
			if u, ok := auth.CurrentUser(r); ok {
				fields = append(fields, zap.String("user_id", u.ID))
			}
			logger.Info("request", fields...)
		})
	}
}
