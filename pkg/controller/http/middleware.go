package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/secmon-lab/roster/pkg/utils/apperr"
)

// SessionCookieName is the cookie that addresses notifications to a browser
const SessionCookieName = "roster_session"

const sessionCookieMaxAge = 24 * time.Hour

// SessionMiddleware attaches the browser session to the request context,
// issuing a new session cookie when the request carries none
func SessionMiddleware(secure bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID types.SessionID
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sessionID = types.SessionID(cookie.Value)
			} else {
				newID, err := types.NewSessionID()
				if err != nil {
					apperr.Handle(r.Context(), err)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				sessionID = newID

				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID.String(),
					Path:     "/",
					MaxAge:   int(sessionCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := model.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
