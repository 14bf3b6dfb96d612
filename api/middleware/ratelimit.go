package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/studyline/lessons-api/api/web"
	"github.com/studyline/lessons-api/api/weberr"
	"github.com/studyline/lessons-api/rate"
)

// RateLimit throttles requests per remote host. The service runs
// without admission control unless a limiter is configured.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !lim.Allow(host) {
				return weberr.NewError(
					errors.New("client exceeded the request rate limit"),
					"too many requests",
					http.StatusTooManyRequests,
				)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
