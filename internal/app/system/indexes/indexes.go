// Package indexes creates the Mongo indexes the query patterns rely on.
// EnsureAll is called once at startup; index creation is idempotent.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll reconciles indexes for every collection. Errors are aggregated
// so any problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureReports(ctx, db); err != nil {
		problems = append(problems, "wasteReports: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Report lists are always sorted by reportedAt descending under a forced
// reportedBy or assignedTo predicate; stats count by status and category.
func ensureReports(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("wasteReports").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "reportedBy", Value: 1}, {Key: "reportedAt", Value: -1}}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}, {Key: "reportedAt", Value: -1}}},
		{Keys: bson.D{{Key: "reportedAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

// Profiles are looked up by uid on every resolved request and listed/counted
// by role for the admin surfaces.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})
	return err
}
