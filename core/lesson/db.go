package lesson

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "lessons"

// ErrNotFound is returned when no lesson matches the given id.
var ErrNotFound = errors.New("lesson not found")

// List fetches every lesson in store-native order.
func List(ctx context.Context, db *mongo.Database) ([]Lesson, error) {
	return find(ctx, db, bson.M{})
}

// Search fetches the lessons matching q. An empty query falls back to
// the full listing.
func Search(ctx context.Context, db *mongo.Database, q string) ([]Lesson, error) {
	if q == "" {
		return List(ctx, db)
	}
	return find(ctx, db, searchFilter(q))
}

func find(ctx context.Context, db *mongo.Database, filter bson.M) ([]Lesson, error) {
	cur, err := db.Collection(Collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding lessons: %w", err)
	}

	lessons := []Lesson{}
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("decoding lessons: %w", err)
	}

	return lessons, nil
}

// searchFilter builds the OR-combined match criteria for q: a
// case-insensitive literal substring match on subject and location,
// plus exact price and spaces matches when q parses as a number.
func searchFilter(q string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}

	or := bson.A{
		bson.M{"subject": pattern},
		bson.M{"location": pattern},
	}

	if n, err := strconv.ParseFloat(q, 64); err == nil {
		or = append(or, bson.M{"price": n}, bson.M{"spaces": n})
	}

	return bson.M{"$or": or}
}

// Update applies the partial field set to the lesson with the given id
// and returns the post-update document.
func Update(ctx context.Context, db *mongo.Database, id primitive.ObjectID, up LessonUp) (*Lesson, error) {
	set := bson.M{"$set": up.fields()}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l Lesson
	err := db.Collection(Collection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, set, opts).
		Decode(&l)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("updating lesson[%s]: %w", id.Hex(), err)
	}

	return &l, nil
}
