package lesson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilterText(t *testing.T) {
	got := searchFilter("math")

	want := bson.M{"$or": bson.A{
		bson.M{"subject": primitive.Regex{Pattern: "math", Options: "i"}},
		bson.M{"location": primitive.Regex{Pattern: "math", Options: "i"}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchFilterNumeric(t *testing.T) {
	got := searchFilter("90")

	want := bson.M{"$or": bson.A{
		bson.M{"subject": primitive.Regex{Pattern: "90", Options: "i"}},
		bson.M{"location": primitive.Regex{Pattern: "90", Options: "i"}},
		bson.M{"price": 90.0},
		bson.M{"spaces": 90.0},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchFilterEscapesRegex(t *testing.T) {
	filter := searchFilter("c++ (advanced)")

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two text clauses, got %v", filter)
	}

	rx := or[0].(bson.M)["subject"].(primitive.Regex)
	if rx.Pattern == "c++ (advanced)" {
		t.Fatal("regex metacharacters were not escaped")
	}
	if rx.Options != "i" {
		t.Fatalf("expected case-insensitive match, got options %q", rx.Options)
	}
}

func TestUpdateFields(t *testing.T) {
	subject := "Physics"
	spaces := 3

	up := LessonUp{Subject: &subject, Spaces: &spaces}

	want := map[string]interface{}{
		"subject": "Physics",
		"spaces":  3,
	}
	if diff := cmp.Diff(want, up.fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	if got := (LessonUp{}).fields(); len(got) != 0 {
		t.Fatalf("empty update produced fields %v", got)
	}
}
