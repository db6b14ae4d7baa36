package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/store"
)

// MinSearchLength: shorter queries fall back to "show all" instead of
// performing a narrow match. UX choice carried over from the dashboards.
const MinSearchLength = 2

type UserService struct {
	db    *gorm.DB
	store store.Store
}

func NewUserService(db *gorm.DB, st store.Store) *UserService {
	return &UserService{db: db, store: st}
}

// DeduplicateUsers drops records with a duplicate email or a duplicate
// real roll number, keeping the first occurrence. Email has priority:
// a record whose email was already seen is dropped regardless of its
// roll number. Empty and placeholder roll numbers never collide.
func DeduplicateUsers(in []models.User) []models.User {
	seenEmails := make(map[string]struct{}, len(in))
	seenRolls := make(map[string]struct{}, len(in))

	out := make([]models.User, 0, len(in))
	for _, u := range in {
		if _, dup := seenEmails[u.Email]; dup {
			logrus.WithField("email", u.Email).Info("duplicate user dropped")
			continue
		}
		if u.HasRollNumber() {
			if _, dup := seenRolls[u.RollNumber]; dup {
				logrus.WithFields(logrus.Fields{
					"email": u.Email, "rollNumber": u.RollNumber,
				}).Info("duplicate roll number dropped")
				continue
			}
		}

		seenEmails[u.Email] = struct{}{}
		if u.HasRollNumber() {
			seenRolls[u.RollNumber] = struct{}{}
		}
		out = append(out, u)
	}
	return out
}

// ListUsers merges server rows (first, so they win on conflict) with any
// locally cached users from the admin snapshot, deduplicates, and — when
// duplicates were dropped — rewrites the cleaned list back into the
// snapshot. Callers must tolerate this side effect on a read.
func (s *UserService) ListUsers() ([]models.User, error) {
	var fromDB []models.User
	if err := s.db.Order("created_at ASC").Find(&fromDB).Error; err != nil {
		return nil, err
	}

	var snap models.AdminSnapshot
	if _, err := s.store.Get(store.KeyAdminSnapshot, &snap); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	merged := append(append([]models.User{}, fromDB...), snap.Users...)
	deduped := DeduplicateUsers(merged)

	if len(deduped) < len(merged) {
		logrus.WithField("removed", len(merged)-len(deduped)).Info("persisting deduplicated user list")
		err := s.store.Update(store.KeyAdminSnapshot, &snap, func() error {
			snap.Users = deduped
			return nil
		})
		if err != nil {
			// Side-channel only; the read result is still valid.
			logrus.WithError(err).Warn("failed to persist deduplicated snapshot")
		}
	}
	return deduped, nil
}

func (s *UserService) UsersByType(userType string) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("user_type = ?", strings.ToUpper(userType)).
		Order("created_at ASC").Find(&users).Error
	return users, err
}

// SearchUsers matches case-insensitively against the allowlisted fields
// (name, email, roll number). Queries under MinSearchLength return the
// full deduplicated list.
func (s *UserService) SearchUsers(query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		return s.ListUsers()
	}

	var users []models.User
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(roll_number) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
