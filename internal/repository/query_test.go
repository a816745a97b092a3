package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectID_Invalid(t *testing.T) {
	if _, err := objectID("not-a-hex-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestObjectID_Valid(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := objectID(want.Hex())
	if err != nil {
		t.Fatalf("objectID failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSearchFilter_QuotesRegexMeta(t *testing.T) {
	filter := searchFilter("a.b*", "name", "email")
	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 field conditions, got %d", len(or))
	}
	re := or[0].(bson.M)["name"].(primitive.Regex)
	if re.Pattern != `a\.b\*` {
		t.Errorf("expected quoted pattern, got %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive option, got %q", re.Options)
	}
}

func TestMergeSearch(t *testing.T) {
	search := searchFilter("x", "name")

	if got := mergeSearch(bson.M{}, search); got["$and"] != nil {
		t.Error("empty base filter should return the search clause directly")
	}

	merged := mergeSearch(bson.M{"status": "New"}, search)
	and, ok := merged["$and"].(bson.A)
	if !ok || len(and) != 2 {
		t.Fatalf("expected $and with 2 members, got %v", merged)
	}
}

func TestSetBool(t *testing.T) {
	filter := bson.M{}
	setBool(filter, "isActive", nil)
	if len(filter) != 0 {
		t.Error("nil flag should not add a condition")
	}

	v := true
	setBool(filter, "isActive", &v)
	if filter["isActive"] != true {
		t.Errorf("expected isActive=true, got %v", filter)
	}
}
