// Package reportpolicy decides, per caller role, which reports are visible,
// which are mutable, and which actions are permitted.
//
// Visibility rules:
//   - Admins see every report.
//   - Cleaners see reports assigned to them, unless they supply an explicit
//     assignedTo filter, which is honored as-is (no ownership check on the
//     override; any cleaner can inspect another cleaner's queue).
//   - Users, including anonymous callers, see only reports they filed. An
//     anonymous caller has no uid, so the forced predicate matches nothing.
//
// Mutation rules:
//   - Update and delete are ownership-only: the caller must be the reporter.
//     Admins get no bypass here, despite their full read and assign rights.
//   - Assign and cleaner listing require a *stored* profile whose role is
//     admin, re-fetched at call time; an absent profile is denied, never
//     defaulted.
package reportpolicy

import (
	"context"

	"github.com/smartwastehq/smartwaste/internal/domain/models"
)

// Scope is the forced read predicate for a caller. Exactly one of the three
// shapes applies: All (no predicate), ReportedBy equality, or AssignedTo
// equality.
type Scope struct {
	All        bool
	ReportedBy string
	AssignedTo string
}

// ListScope returns the forced filter for listing reports.
// assignedToParam is the caller-supplied assignedTo override; it only takes
// effect for cleaners.
func ListScope(role, uid, assignedToParam string) Scope {
	switch role {
	case models.RoleAdmin:
		return Scope{All: true}
	case models.RoleCleaner:
		if assignedToParam != "" {
			return Scope{AssignedTo: assignedToParam}
		}
		return Scope{AssignedTo: uid}
	default:
		return Scope{ReportedBy: uid}
	}
}

// StatsScope returns the forced filter applied to every stats count query.
// Same shape as ListScope but with no override parameter.
func StatsScope(role, uid string) Scope {
	switch role {
	case models.RoleAdmin:
		return Scope{All: true}
	case models.RoleCleaner:
		return Scope{AssignedTo: uid}
	default:
		return Scope{ReportedBy: uid}
	}
}

// CanMutate reports whether the caller may update or delete the report.
// Ownership is the only gate, for every role.
func CanMutate(reportedBy, callerUID string) bool {
	return callerUID != "" && reportedBy == callerUID
}

// RoleFetcher looks up the stored role for a uid. found=false means no
// profile document exists.
type RoleFetcher interface {
	RoleByUID(ctx context.Context, uid string) (role string, found bool, err error)
}

// IsStoredAdmin re-fetches the caller's profile and reports whether it
// exists with the admin role. The resolved (claimed) role is deliberately
// not consulted.
func IsStoredAdmin(ctx context.Context, store RoleFetcher, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	role, found, err := store.RoleByUID(ctx, uid)
	if err != nil {
		return false, err
	}
	return found && role == models.RoleAdmin, nil
}
