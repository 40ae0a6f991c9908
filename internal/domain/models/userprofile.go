package models

// Roles recognized by the access policy. A caller with no stored profile is
// treated as RoleUser.
const (
	RoleUser    = "user"
	RoleCleaner = "cleaner"
	RoleAdmin   = "admin"
)

// UserProfile is the per-user document owned by the identity collaborator.
// This service only reads it: the uid comes from the verified token subject,
// and the role drives every visibility and permission decision.
type UserProfile struct {
	UID         string `bson:"uid" json:"uid"`
	Role        string `bson:"role" json:"role"`
	DisplayName string `bson:"displayName" json:"displayName"`
	Email       string `bson:"email" json:"email"`
}
