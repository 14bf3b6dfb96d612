package lesson

import (
	"context"
	"errors"
	"net/http"

	"github.com/studyline/lessons-api/api/web"
	"github.com/studyline/lessons-api/api/weberr"
	"github.com/studyline/lessons-api/validate"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleList returns every lesson, unfiltered and unpaginated.
func HandleList(db *mongo.Database) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lessons, err := List(ctx, db)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, lessons, http.StatusOK)
	}
}

// HandleSearch returns the lessons matching the q query parameter.
func HandleSearch(db *mongo.Database) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lessons, err := Search(ctx, db, web.Query(r, "q"))
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, lessons, http.StatusOK)
	}
}

// HandleUpdate applies a partial update to a single lesson and returns
// the post-update document.
func HandleUpdate(db *mongo.Database) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := validate.CheckID(web.Param(r, "id"))
		if err != nil {
			return weberr.BadRequest(err, "Invalid id")
		}

		var up LessonUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		if len(up.fields()) == 0 {
			err := errors.New("update body contains no updatable field")
			return weberr.BadRequest(err, "No valid fields to update")
		}

		if err := validate.Check(up); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		l, err := Update(ctx, db, id, up)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err, "Lesson not found")
			}
			return weberr.Wrap(err, weberr.WithFields(map[string]interface{}{
				"lesson_id": id.Hex(),
			}))
		}

		return web.Respond(ctx, w, l, http.StatusOK)
	}
}
