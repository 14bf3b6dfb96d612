package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/studyline/lessons-api/api/web"
	"github.com/studyline/lessons-api/api/weberr"
	"github.com/studyline/lessons-api/validate"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCreate validates and persists a submitted order. Checks run in
// a fixed sequence and the first failure rejects the whole request;
// each failure has its own message so clients can tell them apart.
func HandleCreate(db *mongo.Database) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var o OrderNew
		if err := web.Decode(w, r, &o); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		if err := validate.Var(o.Name, "required,alphaspace"); err != nil {
			return weberr.BadRequest(err, "Invalid name")
		}

		if err := validate.Var(o.Phone, "required,digits"); err != nil {
			return weberr.BadRequest(err, "Invalid phone")
		}

		if len(o.Items) == 0 {
			err := errors.New("order contains no items")
			return weberr.BadRequest(err, "No items in order")
		}

		items := make([]Item, 0, len(o.Items))
		for _, it := range o.Items {
			lessonID, err := validate.CheckID(it.LessonID)
			if err != nil {
				return weberr.BadRequest(err, "Invalid lessonId")
			}

			if err := validate.Var(it.Quantity, "required,gt=0"); err != nil {
				return weberr.BadRequest(err, "Invalid quantity")
			}

			items = append(items, Item{LessonID: lessonID, Quantity: it.Quantity})
		}

		ord := Order{
			Name:      o.Name,
			Phone:     o.Phone,
			Items:     items,
			CreatedAt: time.Now().UTC(),
		}

		if err := Create(ctx, db, &ord); err != nil {
			return weberr.Wrap(err, weberr.WithFields(map[string]interface{}{
				"customer": o.Name,
			}))
		}

		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}
