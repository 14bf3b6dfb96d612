package health

import (
	"context"
	"net/http"

	"github.com/studyline/lessons-api/api/web"
)

type status struct {
	OK bool `json:"ok"`
}

// Handle reports process liveness. It deliberately does not touch the
// document store: a degraded store surfaces on the data routes.
func Handle() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, status{OK: true}, http.StatusOK)
	}
}
