package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// NewUID returns a fresh token-subject-shaped identifier.
func NewUID() string {
	return uuid.NewString()
}

// CreateProfile inserts a user profile with the given role and returns it.
func (f *Fixtures) CreateProfile(ctx context.Context, role string) models.UserProfile {
	f.t.Helper()

	p := models.UserProfile{
		UID:         NewUID(),
		Role:        role,
		DisplayName: "Test " + role,
		Email:       role + "@test.com",
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}

// CreateReport inserts a report filed by the given uid and returns it.
func (f *Fixtures) CreateReport(ctx context.Context, reportedBy string) models.Report {
	f.t.Helper()

	now := time.Now().UTC()
	r := models.Report{
		ID:          primitive.NewObjectID(),
		Title:       "Overflowing bin",
		Description: "Bin at the corner is overflowing",
		Category:    "Garbage Overflow",
		Location:    map[string]any{"lat": 1.0, "lng": 2.0},
		Priority:    "low",
		Images:      []string{},
		Status:      models.StatusPending,
		ReportedBy:  reportedBy,
		ReportedAt:  now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("wasteReports").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test report: %v", err)
	}
	return r
}

// CreateAssignedReport inserts an In Progress report assigned to a cleaner.
func (f *Fixtures) CreateAssignedReport(ctx context.Context, reportedBy, assignedTo string) models.Report {
	f.t.Helper()

	r := f.CreateReport(ctx, reportedBy)
	_, err := f.db.Collection("wasteReports").UpdateByID(ctx, r.ID, map[string]any{
		"$set": map[string]any{
			"assignedTo": assignedTo,
			"status":     models.StatusInProgress,
		},
	})
	if err != nil {
		f.t.Fatalf("failed to assign test report: %v", err)
	}
	r.AssignedTo = assignedTo
	r.Status = models.StatusInProgress
	return r
}
