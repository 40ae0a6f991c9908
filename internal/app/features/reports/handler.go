package reports

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all report endpoints: the role-scoped list plus the create,
// update, delete, and assign mutations.
//
// It follows the same pattern as the other features: a thin struct wrapping
// the shared Mongo database handle and logger, constructed once at startup
// in bootstrap and passed into Routes().
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a reports Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
