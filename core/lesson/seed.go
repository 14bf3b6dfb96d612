package lesson

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func str(s string) *string { return &s }

var fixtures = []interface{}{
	Lesson{Subject: "Math", Location: "London", Price: 100, Spaces: 5, Image: str("math.png")},
	Lesson{Subject: "Math", Location: "Oxford", Price: 90, Spaces: 5, Image: str("math.png")},
	Lesson{Subject: "English", Location: "London", Price: 85, Spaces: 5, Image: str("english.png")},
	Lesson{Subject: "English", Location: "York", Price: 80, Spaces: 5, Image: str("english.png")},
	Lesson{Subject: "Science", Location: "Bristol", Price: 90, Spaces: 5, Image: str("science.png")},
	Lesson{Subject: "Music", Location: "Manchester", Price: 75, Spaces: 5, Image: str("music.png")},
	Lesson{Subject: "History", Location: "London", Price: 70, Spaces: 5, Image: str("history.png")},
	Lesson{Subject: "Art", Location: "Liverpool", Price: 65, Spaces: 90, Image: str("art.png")},
	Lesson{Subject: "Programming", Location: "Leeds", Price: 120, Spaces: 5, Image: str("programming.png")},
	Lesson{Subject: "Drama", Location: "Cambridge", Price: 60, Spaces: 5, Image: nil},
}

// Seed batch-inserts the lesson fixtures when the collection is empty.
// Lessons are never created through the public API.
func Seed(ctx context.Context, db *mongo.Database) (int, error) {
	col := db.Collection(Collection)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting lessons: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	res, err := col.InsertMany(ctx, fixtures)
	if err != nil {
		return 0, fmt.Errorf("inserting lesson fixtures: %w", err)
	}

	return len(res.InsertedIDs), nil
}
