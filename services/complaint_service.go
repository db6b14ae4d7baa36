package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/store"
)

// ComplaintService manages complaints inside the admin aggregate
// snapshot. Complaints are created pending and only move between the
// three statuses by explicit action; they never expire.
type ComplaintService struct {
	store store.Store
}

func NewComplaintService(st store.Store) *ComplaintService {
	return &ComplaintService{store: st}
}

type ComplaintInput struct {
	Title       string `json:"title" validate:"required"`
	Student     string `json:"student" validate:"required"`
	StudentID   string `json:"studentId"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
}

func (s *ComplaintService) Create(input ComplaintInput) (*models.Complaint, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid complaint: %w", err)
	}

	complaint := models.Complaint{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Student:     input.Student,
		StudentID:   input.StudentID,
		Description: input.Description,
		Status:      models.ComplaintStatusPending,
		Priority:    input.Priority,
		Date:        time.Now(),
	}

	var snap models.AdminSnapshot
	err := s.store.Update(store.KeyAdminSnapshot, &snap, func() error {
		snap.Complaints = append(snap.Complaints, complaint)
		return nil
	})
	if err != nil {
		return nil, err
	}

	EmitAlert(models.AlertAudienceAdmin, "info",
		fmt.Sprintf("New %s-priority complaint: %s", complaint.Priority, complaint.Title))
	return &complaint, nil
}

// List applies the AND-composed complaint filters; unset values match
// everything.
func (s *ComplaintService) List(status, priority, query string) ([]models.Complaint, error) {
	var snap models.AdminSnapshot
	if _, err := s.store.Get(store.KeyAdminSnapshot, &snap); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return ApplyFilters(snap.Complaints,
		FieldEquals(status, func(c models.Complaint) string { return c.Status }),
		FieldEquals(priority, func(c models.Complaint) string { return c.Priority }),
		TextSearch(query, func(c models.Complaint) []string {
			return []string{c.Title, c.Student, c.Description}
		}),
	), nil
}

func (s *ComplaintService) UpdateStatus(id, status string) (*models.Complaint, error) {
	switch status {
	case models.ComplaintStatusPending, models.ComplaintStatusInProgress, models.ComplaintStatusSolved:
	default:
		return nil, fmt.Errorf("invalid complaint status %q", status)
	}

	var snap models.AdminSnapshot
	var updated models.Complaint
	err := s.store.Update(store.KeyAdminSnapshot, &snap, func() error {
		for i := range snap.Complaints {
			if snap.Complaints[i].ID == id {
				snap.Complaints[i].Status = status
				updated = snap.Complaints[i]
				return nil
			}
		}
		return fmt.Errorf("complaint %s not found", id)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
