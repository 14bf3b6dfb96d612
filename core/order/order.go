package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a customer's submitted request to reserve quantities of one
// or more lessons. Item lesson ids are soft references: nothing checks
// them against the lessons collection, and creating an order does not
// touch lesson capacity.
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"`
	Items     []Item             `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Item struct {
	LessonID primitive.ObjectID `json:"lessonId" bson:"lessonId"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// OrderNew is the order-submission payload.
type OrderNew struct {
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Items []ItemNew `json:"items"`
}

type ItemNew struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}
