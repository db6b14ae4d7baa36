package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/store"
)

// DistributionService keeps the meal-distribution log staff record after
// each serving session.
type DistributionService struct {
	store store.Store
}

func NewDistributionService(st store.Store) *DistributionService {
	return &DistributionService{store: st}
}

type DistributionInput struct {
	MealType    string `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER"`
	ServedCount int    `json:"servedCount" validate:"gte=0"`
	StaffName   string `json:"staffName" validate:"required"`
	Notes       string `json:"notes"`
}

func (s *DistributionService) Log(input DistributionInput) (*models.DistributionEntry, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid distribution entry: %w", err)
	}

	entry := models.DistributionEntry{
		ID:          uuid.NewString(),
		Date:        time.Now(),
		MealType:    input.MealType,
		ServedCount: input.ServedCount,
		StaffName:   input.StaffName,
		Notes:       input.Notes,
	}

	var log []models.DistributionEntry
	err := s.store.Update(store.KeyDistributionLog, &log, func() error {
		log = append(log, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries for one date, newest first; a zero date means all.
func (s *DistributionService) List(date time.Time) ([]models.DistributionEntry, error) {
	var log []models.DistributionEntry
	if _, err := s.store.Get(store.KeyDistributionLog, &log); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	out := make([]models.DistributionEntry, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		if !date.IsZero() && !sameDay(log[i].Date, date) {
			continue
		}
		out = append(out, log[i])
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
