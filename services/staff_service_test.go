package services_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/store"
)

func TestGenerateStaffIDFormat(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^STF25\d{3}$`)

	for i := 0; i < 20; i++ {
		id := services.GenerateStaffID(now)
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected staff id %q", id)
		}
	}
}

func TestStaffCreateRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := services.NewStaffService(store.NewMemStore())

	input := services.StaffInput{
		Name:     "Asha Verma",
		Email:    "asha@mess.edu",
		Shift:    models.ShiftMorning,
		Password: "secret123",
	}
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	input.Name = "Someone Else"
	if _, err := svc.Create(input); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}

	roster, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected 1 staff member, got %d", len(roster))
	}
}

func TestStaffListFiltersByStatusAndQuery(t *testing.T) {
	t.Parallel()
	svc := services.NewStaffService(store.NewMemStore())

	for _, in := range []services.StaffInput{
		{Name: "Asha Verma", Email: "asha@mess.edu", Shift: models.ShiftMorning, Password: "secret123"},
		{Name: "Ravi Nair", Email: "ravi@mess.edu", Shift: models.ShiftEvening, Password: "secret123"},
	} {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("create %s: %v", in.Name, err)
		}
	}

	all, err := svc.List(models.StaffStatusActive, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both members active, got %d", len(all))
	}

	matched, err := svc.List("", "ravi")
	if err != nil {
		t.Fatalf("list by query: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Ravi Nair" {
		t.Fatalf("unexpected query result: %+v", matched)
	}

	// Single-character queries fall back to the full roster.
	short, err := svc.List("", "r")
	if err != nil {
		t.Fatalf("list short query: %v", err)
	}
	if len(short) != 2 {
		t.Fatalf("expected show-all fallback, got %d", len(short))
	}
}

func TestStaffSetStatusAndDelete(t *testing.T) {
	t.Parallel()
	svc := services.NewStaffService(store.NewMemStore())

	created, err := svc.Create(services.StaffInput{
		Name: "Asha Verma", Email: "asha@mess.edu",
		Shift: models.ShiftFull, Password: "secret123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetStatus(created.StaffID, models.StaffStatusInactive)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != models.StaffStatusInactive {
		t.Fatalf("status not applied: %+v", updated)
	}

	if _, err := svc.SetStatus(created.ID, "retired"); err == nil {
		t.Fatal("expected invalid status to be rejected")
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	roster, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("expected empty roster, got %+v", roster)
	}
}
