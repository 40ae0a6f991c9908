package reportpolicy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
)

func TestListScope_User(t *testing.T) {
	scope := reportpolicy.ListScope(models.RoleUser, "uid-1", "")

	if scope.All {
		t.Error("expected user scope to be restricted")
	}
	if scope.ReportedBy != "uid-1" {
		t.Errorf("ReportedBy: got %q, want %q", scope.ReportedBy, "uid-1")
	}
	if scope.AssignedTo != "" {
		t.Errorf("AssignedTo: got %q, want empty", scope.AssignedTo)
	}
}

func TestListScope_User_IgnoresAssignedToParam(t *testing.T) {
	scope := reportpolicy.ListScope(models.RoleUser, "uid-1", "someone-else")

	if scope.ReportedBy != "uid-1" || scope.AssignedTo != "" {
		t.Errorf("user scope must stay reportedBy-bound, got %+v", scope)
	}
}

func TestListScope_Anonymous(t *testing.T) {
	scope := reportpolicy.ListScope(models.RoleUser, "", "")

	if scope.All {
		t.Error("expected anonymous scope to be restricted")
	}
	if scope.ReportedBy != "" || scope.AssignedTo != "" {
		t.Errorf("anonymous scope must carry an empty reporter, got %+v", scope)
	}
}

func TestListScope_Cleaner(t *testing.T) {
	scope := reportpolicy.ListScope(models.RoleCleaner, "cleaner-1", "")

	if scope.AssignedTo != "cleaner-1" {
		t.Errorf("AssignedTo: got %q, want %q", scope.AssignedTo, "cleaner-1")
	}
	if scope.ReportedBy != "" {
		t.Errorf("ReportedBy: got %q, want empty", scope.ReportedBy)
	}
}

func TestListScope_Cleaner_ExplicitOverride(t *testing.T) {
	// The override is honored as-is; there is deliberately no check that it
	// matches the caller.
	scope := reportpolicy.ListScope(models.RoleCleaner, "cleaner-1", "cleaner-2")

	if scope.AssignedTo != "cleaner-2" {
		t.Errorf("AssignedTo: got %q, want %q", scope.AssignedTo, "cleaner-2")
	}
}

func TestListScope_Admin(t *testing.T) {
	scope := reportpolicy.ListScope(models.RoleAdmin, "admin-1", "")

	if !scope.All {
		t.Error("expected admin scope to be unrestricted")
	}
}

func TestStatsScope_PerRole(t *testing.T) {
	if s := reportpolicy.StatsScope(models.RoleAdmin, "a"); !s.All {
		t.Error("admin stats scope must be unrestricted")
	}
	if s := reportpolicy.StatsScope(models.RoleCleaner, "c"); s.AssignedTo != "c" {
		t.Errorf("cleaner stats scope: got %+v", s)
	}
	if s := reportpolicy.StatsScope(models.RoleUser, "u"); s.ReportedBy != "u" {
		t.Errorf("user stats scope: got %+v", s)
	}
}

func TestCanMutate_Owner(t *testing.T) {
	if !reportpolicy.CanMutate("uid-1", "uid-1") {
		t.Error("expected owner to be allowed")
	}
}

func TestCanMutate_NonOwner(t *testing.T) {
	if reportpolicy.CanMutate("uid-1", "uid-2") {
		t.Error("expected non-owner to be denied")
	}
}

func TestCanMutate_AnonymousCaller(t *testing.T) {
	if reportpolicy.CanMutate("", "") {
		t.Error("expected an anonymous caller to be denied even for an ownerless report")
	}
}

type fakeRoleFetcher struct {
	role  string
	found bool
	err   error
}

func (f fakeRoleFetcher) RoleByUID(context.Context, string) (string, bool, error) {
	return f.role, f.found, f.err
}

func TestIsStoredAdmin_AdminProfile(t *testing.T) {
	ok, err := reportpolicy.IsStoredAdmin(context.Background(), fakeRoleFetcher{role: models.RoleAdmin, found: true}, "uid-1")
	if err != nil {
		t.Fatalf("IsStoredAdmin failed: %v", err)
	}
	if !ok {
		t.Error("expected stored admin to be allowed")
	}
}

func TestIsStoredAdmin_NonAdminProfile(t *testing.T) {
	ok, err := reportpolicy.IsStoredAdmin(context.Background(), fakeRoleFetcher{role: models.RoleCleaner, found: true}, "uid-1")
	if err != nil {
		t.Fatalf("IsStoredAdmin failed: %v", err)
	}
	if ok {
		t.Error("expected cleaner profile to be denied")
	}
}

func TestIsStoredAdmin_AbsentProfile(t *testing.T) {
	// An absent profile is denied, never treated as a default role.
	ok, err := reportpolicy.IsStoredAdmin(context.Background(), fakeRoleFetcher{found: false}, "uid-1")
	if err != nil {
		t.Fatalf("IsStoredAdmin failed: %v", err)
	}
	if ok {
		t.Error("expected absent profile to be denied")
	}
}

func TestIsStoredAdmin_EmptyUID(t *testing.T) {
	ok, err := reportpolicy.IsStoredAdmin(context.Background(), fakeRoleFetcher{role: models.RoleAdmin, found: true}, "")
	if err != nil {
		t.Fatalf("IsStoredAdmin failed: %v", err)
	}
	if ok {
		t.Error("expected empty uid to be denied without a store call")
	}
}

func TestIsStoredAdmin_StoreError(t *testing.T) {
	wantErr := errors.New("store down")
	ok, err := reportpolicy.IsStoredAdmin(context.Background(), fakeRoleFetcher{err: wantErr}, "uid-1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if ok {
		t.Error("expected denial on store error")
	}
}
