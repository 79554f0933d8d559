package middleware

import (
	"net/http"
	"time"

	"QUORA_BACK-END/internal/logging"
)

type logResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (lw *logResponseWriter) WriteHeader(code int) {
	lw.statusCode = code
	lw.ResponseWriter.WriteHeader(code)
}

func (lw *logResponseWriter) Write(b []byte) (int, error) {
	n, err := lw.ResponseWriter.Write(b)
	lw.bytes += n
	return n, err
}

func (lw *logResponseWriter) Unwrap() http.ResponseWriter {
	return lw.ResponseWriter
}

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &logResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lw, r)

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", lw.statusCode,
			"bytes", lw.bytes,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		}
		switch {
		case lw.statusCode >= http.StatusInternalServerError:
			logger.Error(r.Context(), "request completed", args...)
		case lw.statusCode >= http.StatusBadRequest:
			logger.Warn(r.Context(), "request completed", args...)
		default:
			logger.Info(r.Context(), "request completed", args...)
		}
	})
}
