// Package userstore reads user profiles from the users collection. Profiles
// are owned by the identity collaborator; this service never writes them.
package userstore

import (
	"context"
	"errors"

	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// FetchProfile returns the profile for a uid, or nil when no profile
// document exists. Implements auth.ProfileFetcher.
func (s *Store) FetchProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.c.FindOne(ctx, bson.M{"uid": uid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RoleByUID returns the stored role for a uid and whether a profile exists.
// Implements reportpolicy.RoleFetcher; the admin-gated operations call this
// at decision time instead of trusting the role resolved with the request.
func (s *Store) RoleByUID(ctx context.Context, uid string) (string, bool, error) {
	var p models.UserProfile
	proj := options.FindOne().SetProjection(bson.M{"role": 1})
	err := s.c.FindOne(ctx, bson.M{"uid": uid}, proj).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return p.Role, true, nil
}

// ListByRole returns every profile with the given role, for the admin
// cleaner directory.
func (s *Store) ListByRole(ctx context.Context, role string) ([]models.UserProfile, error) {
	cur, err := s.c.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}

	profiles := []models.UserProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountByRole counts profiles with the given role, for the admin stats view.
func (s *Store) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"role": role})
}
