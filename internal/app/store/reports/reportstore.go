// Package reportstore persists waste reports in the wasteReports collection
// and builds role-scoped list queries.
package reportstore

import (
	"context"
	"time"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit caps a list query when the caller supplies no limit. There is
// no enforced upper bound on caller-supplied limits.
const DefaultLimit = 50

// MutableFields is the whitelist of report fields a client update may touch.
// Everything else in the input, reportedBy and reportedAt included, is
// ignored.
var MutableFields = []string{"status", "title", "description", "category", "priority"}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("wasteReports")}
}

// Create inserts a new report. The store assigns the id and both timestamps,
// forces status to Pending, and defaults images to an empty list. ReportedBy
// must already be set to the creating caller's uid.
func (s *Store) Create(ctx context.Context, r models.Report) (models.Report, error) {
	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.Status = models.StatusPending
	if r.Images == nil {
		r.Images = []string{}
	}
	r.ReportedAt = now
	r.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Report{}, err
	}
	return r, nil
}

// GetByID returns a single report. Absent documents surface as
// mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Report, error) {
	var r models.Report
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return models.Report{}, err
	}
	return r, nil
}

// UpdateFields copies the whitelisted mutable fields out of the client input
// and refreshes updatedAt. Keys outside the whitelist are ignored.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, input map[string]any) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for _, f := range MutableFields {
		if v, ok := input[f]; ok {
			set[f] = v
		}
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Assign sets the report's cleaner and forces status to In Progress,
// overwriting whatever status the report had.
func (s *Store) Assign(ctx context.Context, id primitive.ObjectID, cleanerID string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"assignedTo": cleanerID,
		"status":     models.StatusInProgress,
		"updatedAt":  time.Now().UTC(),
	}})
	return err
}

// Delete removes a report by ID. Returns the number of documents deleted
// (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListFilter composes the policy's forced scope with the caller-supplied
// equality filters. The scope is applied first; category, status, and
// assignedTo narrow the result from there.
type ListFilter struct {
	Scope      reportpolicy.Scope
	Category   string
	Status     string
	AssignedTo string
	Limit      int64
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if !f.Scope.All {
		if f.Scope.ReportedBy != "" {
			q["reportedBy"] = f.Scope.ReportedBy
		} else if f.Scope.AssignedTo != "" {
			q["assignedTo"] = f.Scope.AssignedTo
		} else {
			// Anonymous caller under a reportedBy scope: no uid can ever
			// match, so the query must return nothing.
			q["reportedBy"] = bson.M{"$exists": false}
		}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.AssignedTo != "" {
		q["assignedTo"] = f.AssignedTo
	}
	return q
}

// List runs the composed query, newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Report, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "reportedAt", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}

	reports := []models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// CountByFilter counts documents matching the composed query, ignoring the
// limit. Stats runs one of these per status and per category.
func (s *Store) CountByFilter(ctx context.Context, f ListFilter) (int64, error) {
	return s.c.CountDocuments(ctx, f.query())
}
