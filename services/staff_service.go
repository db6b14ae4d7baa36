package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/store"
	"github.com/JashanBansal182304/MessMate/utils"
)

// StaffService manages the staff roster, which lives in the local
// snapshot store: the original system never grew a staff table.
type StaffService struct {
	store store.Store
}

func NewStaffService(st store.Store) *StaffService {
	return &StaffService{store: st}
}

type StaffInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Shift    string `json:"shift" validate:"required,oneof=morning evening full"`
	Role     string `json:"role"`
	Password string `json:"password" validate:"required,min=6"`
}

// GenerateStaffID mints "STF" + 2-digit year + 3-digit random.
func GenerateStaffID(now time.Time) string {
	return fmt.Sprintf("STF%02d%03d", now.Year()%100, rand.Intn(900)+100)
}

func (s *StaffService) Create(input StaffInput) (*models.StaffMember, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid staff member: %w", err)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var roster []models.StaffMember
	var created models.StaffMember
	err = s.store.Update(store.KeyStaffRoster, &roster, func() error {
		taken := make(map[string]struct{}, len(roster))
		for _, m := range roster {
			if m.Email == input.Email {
				return fmt.Errorf("staff email %s already exists", input.Email)
			}
			taken[m.StaffID] = struct{}{}
		}

		staffID := GenerateStaffID(time.Now())
		for {
			if _, dup := taken[staffID]; !dup {
				break
			}
			staffID = GenerateStaffID(time.Now())
		}

		created = models.StaffMember{
			ID:       uuid.NewString(),
			StaffID:  staffID,
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Shift:    input.Shift,
			Status:   models.StaffStatusActive,
			Role:     input.Role,
			Password: hashed,
		}
		roster = append(roster, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List applies the AND-composed staff filters: status equality plus a
// free-text search over name, staffId and email.
func (s *StaffService) List(status, query string) ([]models.StaffMember, error) {
	var roster []models.StaffMember
	if _, err := s.store.Get(store.KeyStaffRoster, &roster); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return ApplyFilters(roster,
		FieldEquals(status, func(m models.StaffMember) string { return m.Status }),
		TextSearch(query, func(m models.StaffMember) []string {
			return []string{m.Name, m.StaffID, m.Email}
		}),
	), nil
}

func (s *StaffService) SetStatus(id, status string) (*models.StaffMember, error) {
	if status != models.StaffStatusActive && status != models.StaffStatusInactive {
		return nil, fmt.Errorf("invalid staff status %q", status)
	}

	var roster []models.StaffMember
	var updated *models.StaffMember
	err := s.store.Update(store.KeyStaffRoster, &roster, func() error {
		for i := range roster {
			if roster[i].ID == id || roster[i].StaffID == id {
				roster[i].Status = status
				updated = &roster[i]
				return nil
			}
		}
		return fmt.Errorf("staff member %s not found", id)
	})
	if err != nil {
		return nil, err
	}
	out := *updated
	return &out, nil
}

func (s *StaffService) Delete(id string) error {
	var roster []models.StaffMember
	return s.store.Update(store.KeyStaffRoster, &roster, func() error {
		for i := range roster {
			if roster[i].ID == id || roster[i].StaffID == id {
				roster = append(roster[:i], roster[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("staff member %s not found", id)
	})
}
