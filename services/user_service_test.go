package services_test

import (
	"testing"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
)

func TestDeduplicateUsersEmailFirstWins(t *testing.T) {
	t.Parallel()
	in := []models.User{
		{Email: "a@x.com", RollNumber: "R1", Name: "first"},
		{Email: "a@x.com", RollNumber: "R2", Name: "second"},
	}

	out := services.DeduplicateUsers(in)

	if len(out) != 1 {
		t.Fatalf("expected 1 user, got %d", len(out))
	}
	if out[0].Name != "first" || out[0].RollNumber != "R1" {
		t.Fatalf("wrong survivor: %+v", out[0])
	}
}

func TestDeduplicateUsersEmailPriorityOverRoll(t *testing.T) {
	t.Parallel()
	// The second record shares an email with the first and is dropped even
	// though its roll R2 is unique; R2 is therefore never marked seen. The
	// third shares R1 with the first and is dropped despite its new email.
	in := []models.User{
		{Email: "a@x.com", RollNumber: "R1"},
		{Email: "a@x.com", RollNumber: "R2"},
		{Email: "b@x.com", RollNumber: "R1"},
	}

	out := services.DeduplicateUsers(in)

	if len(out) != 1 {
		t.Fatalf("expected exactly 1 user, got %d: %+v", len(out), out)
	}
	if out[0].Email != "a@x.com" || out[0].RollNumber != "R1" {
		t.Fatalf("wrong survivor: %+v", out[0])
	}
}

func TestDeduplicateUsersPlaceholderRollsNeverCollide(t *testing.T) {
	t.Parallel()
	in := []models.User{
		{Email: "a@x.com", RollNumber: models.RollNumberPlaceholder},
		{Email: "b@x.com", RollNumber: models.RollNumberPlaceholder},
		{Email: "c@x.com"},
		{Email: "d@x.com"},
	}

	out := services.DeduplicateUsers(in)

	if len(out) != 4 {
		t.Fatalf("expected all 4 users kept, got %d", len(out))
	}
}

func TestDeduplicateUsersIdempotent(t *testing.T) {
	t.Parallel()
	in := []models.User{
		{Email: "a@x.com", RollNumber: "R1"},
		{Email: "b@x.com", RollNumber: "R2"},
		{Email: "a@x.com", RollNumber: "R3"},
		{Email: "c@x.com"},
	}

	once := services.DeduplicateUsers(in)
	twice := services.DeduplicateUsers(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Email != twice[i].Email {
			t.Fatalf("second pass reordered output at %d", i)
		}
	}
}
