package test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/studyline/lessons-api/core/lesson"
	"github.com/studyline/lessons-api/core/order"
)

func TestOrderValidation(t *testing.T) {
	env, err := NewTestEnv(t, "order_validation")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	var all []lesson.Lesson
	env.get(t, "/lessons", http.StatusOK, &all)
	lessonID := all[0].ID.Hex()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "digits in name",
			body:    fmt.Sprintf(`{"name":"John123","phone":"12345","items":[{"lessonId":"%s","quantity":1}]}`, lessonID),
			message: "Invalid name",
		},
		{
			name:    "empty name",
			body:    fmt.Sprintf(`{"name":"","phone":"12345","items":[{"lessonId":"%s","quantity":1}]}`, lessonID),
			message: "Invalid name",
		},
		{
			name:    "letters in phone",
			body:    fmt.Sprintf(`{"name":"John Doe","phone":"abc","items":[{"lessonId":"%s","quantity":1}]}`, lessonID),
			message: "Invalid phone",
		},
		{
			name:    "missing phone",
			body:    fmt.Sprintf(`{"name":"John Doe","items":[{"lessonId":"%s","quantity":1}]}`, lessonID),
			message: "Invalid phone",
		},
		{
			name:    "empty items",
			body:    `{"name":"John Doe","phone":"12345","items":[]}`,
			message: "No items in order",
		},
		{
			name:    "missing items",
			body:    `{"name":"John Doe","phone":"12345"}`,
			message: "No items in order",
		},
		{
			name:    "malformed lesson id",
			body:    `{"name":"John Doe","phone":"12345","items":[{"lessonId":"xyz","quantity":1}]}`,
			message: "Invalid lessonId",
		},
		{
			name:    "zero quantity",
			body:    fmt.Sprintf(`{"name":"John Doe","phone":"12345","items":[{"lessonId":"%s","quantity":0}]}`, lessonID),
			message: "Invalid quantity",
		},
		{
			name:    "negative quantity",
			body:    fmt.Sprintf(`{"name":"John Doe","phone":"12345","items":[{"lessonId":"%s","quantity":-2}]}`, lessonID),
			message: "Invalid quantity",
		},
		{
			name:    "second item invalid",
			body:    fmt.Sprintf(`{"name":"John Doe","phone":"12345","items":[{"lessonId":"%s","quantity":1},{"lessonId":"nope","quantity":1}]}`, lessonID),
			message: "Invalid lessonId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.sendExpectingError(t, http.MethodPost, "/orders", tt.body, http.StatusBadRequest, tt.message)
		})
	}
}

func TestOrderCreate(t *testing.T) {
	env, err := NewTestEnv(t, "order_create")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	var all []lesson.Lesson
	env.get(t, "/lessons", http.StatusOK, &all)

	body := fmt.Sprintf(`{"name":"John Doe","phone":"07123456789","items":[{"lessonId":"%s","quantity":2},{"lessonId":"%s","quantity":1}]}`,
		all[0].ID.Hex(), all[1].ID.Hex())

	var ord order.Order
	env.send(t, http.MethodPost, "/orders", body, http.StatusCreated, &ord)

	if ord.ID.IsZero() {
		t.Fatal("created order has no id")
	}
	if ord.CreatedAt.IsZero() {
		t.Fatal("created order has no timestamp")
	}
	if len(ord.Items) != 2 {
		t.Fatalf("order has %d items, want 2", len(ord.Items))
	}
	if ord.Items[0].LessonID != all[0].ID || ord.Items[0].Quantity != 2 {
		t.Fatalf("first item mismatch: %+v", ord.Items[0])
	}

	// Creating an order does not touch lesson capacity.
	var after []lesson.Lesson
	env.get(t, "/lessons", http.StatusOK, &after)
	if after[0].Spaces != all[0].Spaces {
		t.Fatalf("order creation changed spaces from %d to %d", all[0].Spaces, after[0].Spaces)
	}

	// No deduplication: an identical payload makes a second order.
	var dup order.Order
	env.send(t, http.MethodPost, "/orders", body, http.StatusCreated, &dup)
	if dup.ID == ord.ID {
		t.Fatalf("duplicate submission reused order id %s", ord.ID.Hex())
	}
}
