package services_test

import (
	"testing"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
)

func TestAverageRatingOneDecimal(t *testing.T) {
	t.Parallel()
	list := []models.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 3}}

	if got := services.AverageRating(list); got != 4.0 {
		t.Fatalf("average = %v, want 4.0", got)
	}

	list = []models.Feedback{{Rating: 5}, {Rating: 4}}
	if got := services.AverageRating(list); got != 4.5 {
		t.Fatalf("average = %v, want 4.5", got)
	}

	// 4+4+5 = 13/3 = 4.333… → 4.3
	list = []models.Feedback{{Rating: 4}, {Rating: 4}, {Rating: 5}}
	if got := services.AverageRating(list); got != 4.3 {
		t.Fatalf("average = %v, want 4.3", got)
	}
}

func TestAverageRatingEmptyListIsZero(t *testing.T) {
	t.Parallel()
	if got := services.AverageRating(nil); got != 0.0 {
		t.Fatalf("average of empty list = %v, want 0.0", got)
	}
}

func TestAverageRatingBounds(t *testing.T) {
	t.Parallel()
	lists := [][]models.Feedback{
		{{Rating: 1}},
		{{Rating: 5}, {Rating: 5}},
		{{Rating: 1}, {Rating: 2}, {Rating: 3}, {Rating: 4}, {Rating: 5}},
	}
	for _, list := range lists {
		got := services.AverageRating(list)
		if got < 1.0 || got > 5.0 {
			t.Fatalf("average %v outside [1.0, 5.0] for %+v", got, list)
		}
	}
}

func TestAveragesByTypeDefaultsToZero(t *testing.T) {
	t.Parallel()
	list := []models.Feedback{
		{FeedbackType: models.FeedbackTypeFoodQuality, Rating: 4},
		{FeedbackType: models.FeedbackTypeFoodQuality, Rating: 5},
		{FeedbackType: models.FeedbackTypeService, Rating: 2},
	}

	got := services.AveragesByType(list)

	if got[models.FeedbackTypeFoodQuality] != 4.5 {
		t.Fatalf("food average = %v, want 4.5", got[models.FeedbackTypeFoodQuality])
	}
	if got[models.FeedbackTypeService] != 2.0 {
		t.Fatalf("service average = %v, want 2.0", got[models.FeedbackTypeService])
	}
	if got[models.FeedbackTypeCleanliness] != 0 {
		t.Fatalf("cleanliness average = %v, want 0", got[models.FeedbackTypeCleanliness])
	}
}

func TestLegacyAverages(t *testing.T) {
	t.Parallel()
	list := []models.LegacyFeedback{
		{FoodRating: 5, ServiceRating: 3},
		{FoodRating: 4, ServiceRating: 4},
	}

	food, service := services.LegacyAverages(list)
	if food != 4.5 {
		t.Fatalf("food average = %v, want 4.5", food)
	}
	if service != 3.5 {
		t.Fatalf("service average = %v, want 3.5", service)
	}

	food, service = services.LegacyAverages(nil)
	if food != 0.0 || service != 0.0 {
		t.Fatalf("empty legacy averages = %v/%v, want 0.0/0.0", food, service)
	}
}

func TestStarDisplay(t *testing.T) {
	t.Parallel()
	cases := []struct {
		rating int
		want   string
	}{
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{0, "★☆☆☆☆"},  // out of range: clamped, never a negative repeat
		{9, "★★★★★"},
		{-2, "★☆☆☆☆"},
	}
	for _, c := range cases {
		if got := services.StarDisplay(c.rating); got != c.want {
			t.Fatalf("StarDisplay(%d) = %q, want %q", c.rating, got, c.want)
		}
	}
}

func TestConvertLegacyFeedbackSplitsIntoTwoRecords(t *testing.T) {
	t.Parallel()
	legacy := []models.LegacyFeedback{
		{StudentName: "Asha", StudentEmail: "asha@x.com", FoodRating: 7, ServiceRating: 0, Comment: "ok"},
	}

	out := services.ConvertLegacyFeedback(legacy)

	if len(out) != 2 {
		t.Fatalf("expected 2 canonical records, got %d", len(out))
	}
	if out[0].FeedbackType != models.FeedbackTypeFoodQuality || out[0].Rating != 5 {
		t.Fatalf("food record not clamped: %+v", out[0])
	}
	if out[1].FeedbackType != models.FeedbackTypeService || out[1].Rating != 1 {
		t.Fatalf("service record not clamped: %+v", out[1])
	}
	for _, fb := range out {
		if fb.Status != models.FeedbackStatusPending {
			t.Fatalf("imported record not pending: %+v", fb)
		}
	}
}
