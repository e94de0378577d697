package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/points-bridge/internal/logger"
)

// statusWriter перехватывает код статуса и размер тела ответа
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// LogHandle — middleware-логер для входящих HTTP-запросов.
// Тела запросов не логируются: в них пароли и суммы переводов.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w}
		h.ServeHTTP(sw, r)

		logger.Info("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", sw.status,
			"duration", time.Since(start),
			"size", sw.size,
		)
	})
}
