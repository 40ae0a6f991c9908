package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses. Any authorized writer may set any status; there is no
// enforced transition order.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Categories lists every report category in the order stats are reported.
var Categories = []string{
	"Garbage Overflow",
	"Illegal Dumping",
	"Recycling Issue",
	"Hazardous Waste",
	"Dead Animal",
	"Other",
}

// Report is a filed waste complaint.
//
// Field names are stored in camelCase to match the documents the mobile and
// web clients already write and read. ReportedBy is set exactly once at
// creation and is never accepted from client input afterwards. AssignedTo is
// empty until an admin assigns the report to a cleaner.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Location    map[string]any     `bson:"location" json:"location"` // opaque, passed through unvalidated
	Priority    string             `bson:"priority" json:"priority"`
	Images      []string           `bson:"images" json:"images"`
	Status      string             `bson:"status" json:"status"`
	ReportedBy  string             `bson:"reportedBy" json:"reportedBy"`
	AssignedTo  string             `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`

	ReportedAt time.Time `bson:"reportedAt" json:"reportedAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
