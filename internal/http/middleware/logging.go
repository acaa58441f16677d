package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/pokedex-service/pkg/log"
)

// Logging кладёт request-scoped логгер в контекст и пишет access-лог
// по завершении запроса: метод, путь, query, статус, размер ответа,
// адрес клиента и длительность.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.bytes),
				slog.String("remote", remoteHost(r)),
			}
			if q := r.URL.RawQuery; q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			if ua := r.UserAgent(); ua != "" {
				attrs = append(attrs, slog.String("user_agent", ua))
			}

			// Логгер берём из контекста: он уже несёт request_id.
			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "http_request", attrs...)
		})
	}
}

// remoteHost — host-часть RemoteAddr; адрес без порта возвращается как есть.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
