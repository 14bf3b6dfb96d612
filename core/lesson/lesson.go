package lesson

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a bookable tutoring offering. Spaces is the remaining
// capacity; Image is an optional filename served from /images.
type Lesson struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Subject  string             `json:"subject" bson:"subject"`
	Location string             `json:"location" bson:"location"`
	Price    float64            `json:"price" bson:"price"`
	Spaces   int                `json:"spaces" bson:"spaces"`
	Image    *string            `json:"image" bson:"image"`
}

// LessonUp is the partial-update payload. Only these five fields may
// be changed; anything else in the request body is ignored.
type LessonUp struct {
	Subject  *string  `json:"subject"`
	Location *string  `json:"location"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Spaces   *int     `json:"spaces" validate:"omitempty,gte=0"`
	Image    *string  `json:"image"`
}

func (up LessonUp) fields() map[string]interface{} {
	f := make(map[string]interface{})
	if up.Subject != nil {
		f["subject"] = *up.Subject
	}
	if up.Location != nil {
		f["location"] = *up.Location
	}
	if up.Price != nil {
		f["price"] = *up.Price
	}
	if up.Spaces != nil {
		f["spaces"] = *up.Spaces
	}
	if up.Image != nil {
		f["image"] = *up.Image
	}
	return f
}
