package services_test

import (
	"testing"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
)

func complaintStatus(c models.Complaint) string { return c.Status }

func TestApplyFiltersUnsetReturnsEverything(t *testing.T) {
	t.Parallel()
	in := []models.Complaint{
		{ID: "1", Status: models.ComplaintStatusPending},
		{ID: "2", Status: models.ComplaintStatusSolved},
	}

	out := services.ApplyFilters(in,
		services.FieldEquals("", complaintStatus),
		services.TextSearch("", func(c models.Complaint) []string { return []string{c.Title} }),
	)

	if len(out) != len(in) {
		t.Fatalf("expected %d items, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Fatalf("contents changed at %d", i)
		}
	}
}

func TestApplyFiltersStatusFilter(t *testing.T) {
	t.Parallel()
	in := []models.Complaint{
		{ID: "1", Status: models.ComplaintStatusPending},
		{ID: "2", Status: models.ComplaintStatusSolved},
		{ID: "3", Status: models.ComplaintStatusPending},
	}

	out := services.ApplyFilters(in, services.FieldEquals(models.ComplaintStatusPending, complaintStatus))

	if len(out) != 2 {
		t.Fatalf("expected 2 pending complaints, got %d", len(out))
	}
	for _, c := range out {
		if c.Status != models.ComplaintStatusPending {
			t.Fatalf("non-pending complaint leaked through: %+v", c)
		}
	}
}

func TestApplyFiltersComposeByAND(t *testing.T) {
	t.Parallel()
	in := []models.Complaint{
		{ID: "1", Status: models.ComplaintStatusPending, Priority: models.ComplaintPriorityHigh},
		{ID: "2", Status: models.ComplaintStatusPending, Priority: models.ComplaintPriorityLow},
		{ID: "3", Status: models.ComplaintStatusSolved, Priority: models.ComplaintPriorityHigh},
	}

	out := services.ApplyFilters(in,
		services.FieldEquals(models.ComplaintStatusPending, complaintStatus),
		services.FieldEquals(models.ComplaintPriorityHigh, func(c models.Complaint) string { return c.Priority }),
	)

	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected only complaint 1, got %+v", out)
	}
}

func TestTextSearchShortQueryShowsAll(t *testing.T) {
	t.Parallel()
	in := []models.User{
		{Name: "Asha", Email: "asha@x.com"},
		{Name: "Ravi", Email: "ravi@x.com"},
	}
	fields := func(u models.User) []string { return []string{u.Name, u.Email, u.RollNumber} }

	out := services.ApplyFilters(in, services.TextSearch("a", fields))
	if len(out) != len(in) {
		t.Fatalf("1-char query should show all, got %d of %d", len(out), len(in))
	}

	out = services.ApplyFilters(in, services.TextSearch("ASHA", fields))
	if len(out) != 1 || out[0].Name != "Asha" {
		t.Fatalf("case-insensitive search failed: %+v", out)
	}
}

func TestRatingEqualsZeroMeansUnset(t *testing.T) {
	t.Parallel()
	in := []models.Feedback{{Rating: 3}, {Rating: 5}}

	out := services.ApplyFilters(in, services.RatingEquals(0, func(f models.Feedback) int { return f.Rating }))
	if len(out) != 2 {
		t.Fatalf("unset rating filter should match all, got %d", len(out))
	}

	out = services.ApplyFilters(in, services.RatingEquals(5, func(f models.Feedback) int { return f.Rating }))
	if len(out) != 1 || out[0].Rating != 5 {
		t.Fatalf("rating filter failed: %+v", out)
	}
}
