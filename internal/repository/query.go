package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectID parses a hex id. An unparsable id can never match a document, so
// it maps to ErrNotFound rather than a validation error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// searchFilter builds a case-insensitive substring match over the given
// fields. The term is quoted so user input cannot inject regex syntax.
func searchFilter(term string, fields ...string) bson.M {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}

// setBool adds an equality condition when the optional flag is present.
func setBool(filter bson.M, key string, v *bool) {
	if v != nil {
		filter[key] = *v
	}
}

// mergeSearch folds a search condition into the filter, preserving any
// existing $or by nesting under $and.
func mergeSearch(filter bson.M, search bson.M) bson.M {
	if len(filter) == 0 {
		return search
	}
	return bson.M{"$and": bson.A{filter, search}}
}
