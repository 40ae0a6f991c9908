package userstore_test

import (
	"testing"

	"github.com/smartwastehq/smartwaste/internal/app/store/users"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"github.com/smartwastehq/smartwaste/internal/testutil"
)

func TestFetchProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fx.CreateProfile(ctx, models.RoleCleaner)

	got, err := store.FetchProfile(ctx, created.UID)
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if got == nil {
		t.Fatal("expected a profile, got nil")
	}
	if got.Role != models.RoleCleaner {
		t.Errorf("role: got %q, want %q", got.Role, models.RoleCleaner)
	}
	if got.DisplayName != created.DisplayName || got.Email != created.Email {
		t.Errorf("profile fields: got %+v, want %+v", got, created)
	}
}

func TestFetchProfile_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.FetchProfile(ctx, testutil.NewUID())
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent profile, got %+v", got)
	}
}

func TestRoleByUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateProfile(ctx, models.RoleAdmin)

	role, found, err := store.RoleByUID(ctx, admin.UID)
	if err != nil {
		t.Fatalf("RoleByUID: %v", err)
	}
	if !found {
		t.Fatal("expected found=true for stored profile")
	}
	if role != models.RoleAdmin {
		t.Errorf("role: got %q, want %q", role, models.RoleAdmin)
	}
}

func TestRoleByUID_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	role, found, err := store.RoleByUID(ctx, testutil.NewUID())
	if err != nil {
		t.Fatalf("RoleByUID: %v", err)
	}
	if found {
		t.Error("expected found=false for absent profile")
	}
	if role != "" {
		t.Errorf("role: got %q, want empty", role)
	}
}

func TestListByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProfile(ctx, models.RoleCleaner)
	fx.CreateProfile(ctx, models.RoleCleaner)
	fx.CreateProfile(ctx, models.RoleUser)
	fx.CreateProfile(ctx, models.RoleAdmin)

	cleaners, err := store.ListByRole(ctx, models.RoleCleaner)
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if len(cleaners) != 2 {
		t.Fatalf("got %d cleaners, want 2", len(cleaners))
	}
	for _, c := range cleaners {
		if c.Role != models.RoleCleaner {
			t.Errorf("unexpected role %q in cleaner listing", c.Role)
		}
	}
}

func TestListByRole_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cleaners, err := store.ListByRole(ctx, models.RoleCleaner)
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if cleaners == nil {
		t.Error("expected empty non-nil slice")
	}
	if len(cleaners) != 0 {
		t.Errorf("got %d profiles, want 0", len(cleaners))
	}
}

func TestCountByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProfile(ctx, models.RoleUser)
	fx.CreateProfile(ctx, models.RoleUser)
	fx.CreateProfile(ctx, models.RoleCleaner)

	users, err := store.CountByRole(ctx, models.RoleUser)
	if err != nil {
		t.Fatalf("CountByRole: %v", err)
	}
	if users != 2 {
		t.Errorf("user count: got %d, want 2", users)
	}

	admins, err := store.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("CountByRole: %v", err)
	}
	if admins != 0 {
		t.Errorf("admin count: got %d, want 0", admins)
	}
}
