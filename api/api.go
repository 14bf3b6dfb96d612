package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/studyline/lessons-api/api/middleware"
	"github.com/studyline/lessons-api/api/web"
	"github.com/studyline/lessons-api/core/health"
	"github.com/studyline/lessons-api/core/image"
	"github.com/studyline/lessons-api/core/lesson"
	"github.com/studyline/lessons-api/core/order"
	"github.com/studyline/lessons-api/rate"
	"go.mongodb.org/mongo-driver/mongo"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	DB         *mongo.Database
	ImagesDir  string
	Limiter    *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	a.Handle(http.MethodGet, "/health", health.Handle())

	a.Handle(http.MethodGet, "/lessons", lesson.HandleList(cfg.DB))
	a.Handle(http.MethodGet, "/search", lesson.HandleSearch(cfg.DB))
	a.Handle(http.MethodPut, "/lessons/{id}", lesson.HandleUpdate(cfg.DB))

	a.Handle(http.MethodPost, "/orders", order.HandleCreate(cfg.DB))

	a.Handle(http.MethodGet, "/images/{file}", image.HandleShow(cfg.ImagesDir))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
