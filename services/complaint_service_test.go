package services_test

import (
	"testing"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/store"
)

func TestComplaintLifecycle(t *testing.T) {
	t.Parallel()
	svc := services.NewComplaintService(store.NewMemStore())

	created, err := svc.Create(services.ComplaintInput{
		Title:       "Cold food at dinner",
		Student:     "Ravi Nair",
		Description: "Dinner was served cold two days in a row",
		Priority:    models.ComplaintPriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.ComplaintStatusPending {
		t.Fatalf("new complaint should be pending, got %q", created.Status)
	}

	updated, err := svc.UpdateStatus(created.ID, models.ComplaintStatusInProgress)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.ComplaintStatusInProgress {
		t.Fatalf("status not applied: %+v", updated)
	}

	if _, err := svc.UpdateStatus(created.ID, "escalated"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestComplaintListFilters(t *testing.T) {
	t.Parallel()
	svc := services.NewComplaintService(store.NewMemStore())

	inputs := []services.ComplaintInput{
		{Title: "Cold food", Student: "Ravi", Description: "cold dinner", Priority: models.ComplaintPriorityHigh},
		{Title: "Broken chair", Student: "Asha", Description: "chair near window", Priority: models.ComplaintPriorityLow},
	}
	for _, in := range inputs {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("create %q: %v", in.Title, err)
		}
	}

	high, err := svc.List("", models.ComplaintPriorityHigh, "")
	if err != nil {
		t.Fatalf("list high: %v", err)
	}
	if len(high) != 1 || high[0].Title != "Cold food" {
		t.Fatalf("unexpected priority filter result: %+v", high)
	}

	matched, err := svc.List(models.ComplaintStatusPending, "", "chair")
	if err != nil {
		t.Fatalf("list by query: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Broken chair" {
		t.Fatalf("unexpected query result: %+v", matched)
	}
}
