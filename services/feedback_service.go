package services

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/utils"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

type FeedbackInput struct {
	StudentName  string `json:"studentName" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	FeedbackType string `json:"feedbackType" validate:"required,oneof=FOOD_QUALITY SERVICE CLEANLINESS GENERAL"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Message      string `json:"message" validate:"required"`
}

// FeedbackStats is the view model for the feedback overview cards.
type FeedbackStats struct {
	Total          int64              `json:"total"`
	AverageRating  float64            `json:"averageRating"`
	AveragesByType map[string]float64 `json:"averagesByType"`
}

// AverageRating returns the mean rating rounded to one decimal place.
// An empty list yields exactly 0.0, never NaN.
func AverageRating(list []models.Feedback) float64 {
	if len(list) == 0 {
		return 0.0
	}
	var sum int
	for _, fb := range list {
		sum += fb.Rating
	}
	return roundOneDecimal(float64(sum) / float64(len(list)))
}

// AveragesByType computes the per-feedbackType average rating for every
// known type, defaulting to 0 when no records of that type exist.
func AveragesByType(list []models.Feedback) map[string]float64 {
	types := []string{
		models.FeedbackTypeFoodQuality,
		models.FeedbackTypeService,
		models.FeedbackTypeCleanliness,
		models.FeedbackTypeGeneral,
	}

	sums := make(map[string]int, len(types))
	counts := make(map[string]int, len(types))
	for _, fb := range list {
		sums[fb.FeedbackType] += fb.Rating
		counts[fb.FeedbackType]++
	}

	out := make(map[string]float64, len(types))
	for _, t := range types {
		if counts[t] == 0 {
			out[t] = 0
			continue
		}
		out[t] = roundOneDecimal(float64(sums[t]) / float64(counts[t]))
	}
	return out
}

// LegacyAverages computes the separate food and service averages over the
// old dual-rating shape, each with the same one-decimal/zero-on-empty rule.
func LegacyAverages(list []models.LegacyFeedback) (food, service float64) {
	if len(list) == 0 {
		return 0.0, 0.0
	}
	var foodSum, serviceSum int
	for _, fb := range list {
		foodSum += fb.FoodRating
		serviceSum += fb.ServiceRating
	}
	n := float64(len(list))
	return roundOneDecimal(float64(foodSum) / n), roundOneDecimal(float64(serviceSum) / n)
}

// StarDisplay renders r filled markers followed by (5-r) empty ones.
// Ratings are validated 1..5 at the API boundary; the clamp here guards
// legacy-import data that was never validated upstream.
func StarDisplay(r int) string {
	if r < 1 {
		r = 1
	}
	if r > 5 {
		r = 5
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *FeedbackService) Create(input FeedbackInput) (*models.Feedback, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid feedback: %w", err)
	}

	fb := models.Feedback{
		StudentName:  input.StudentName,
		StudentEmail: input.StudentEmail,
		FeedbackType: input.FeedbackType,
		Rating:       input.Rating,
		Message:      input.Message,
		Status:       models.FeedbackStatusPending,
	}
	if err := s.db.Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (s *FeedbackService) List() ([]models.Feedback, error) {
	var list []models.Feedback
	err := s.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *FeedbackService) ByRating(rating int) ([]models.Feedback, error) {
	var list []models.Feedback
	err := s.db.Where("rating = ?", rating).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *FeedbackService) Stats() (*FeedbackStats, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	return &FeedbackStats{
		Total:          int64(len(list)),
		AverageRating:  AverageRating(list),
		AveragesByType: AveragesByType(list),
	}, nil
}

func (s *FeedbackService) UpdateStatus(id uint, status string) (*models.Feedback, error) {
	switch status {
	case models.FeedbackStatusPending, models.FeedbackStatusReviewed, models.FeedbackStatusResolved:
	default:
		return nil, fmt.Errorf("invalid feedback status %q", status)
	}

	var fb models.Feedback
	if err := s.db.First(&fb, id).Error; err != nil {
		return nil, err
	}
	fb.Status = status
	if err := s.db.Save(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// Reply stores the staff reply, marks the feedback reviewed, and sends a
// notice to the student. Mail failures are logged by the mailer and do not
// fail the reply.
func (s *FeedbackService) Reply(id uint, reply string) (*models.Feedback, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("reply cannot be empty")
	}

	var fb models.Feedback
	if err := s.db.First(&fb, id).Error; err != nil {
		return nil, err
	}
	fb.StaffReply = reply
	if fb.Status == models.FeedbackStatusPending {
		fb.Status = models.FeedbackStatusReviewed
	}
	if err := s.db.Save(&fb).Error; err != nil {
		return nil, err
	}

	go utils.SendFeedbackReplyEmail(fb.StudentEmail, fb.Message, reply)
	return &fb, nil
}

// ImportLegacy converts old dual-rating records into the canonical shape:
// one FOOD_QUALITY and one SERVICE record per legacy entry. The legacy
// shape never reaches rendering paths.
func (s *FeedbackService) ImportLegacy(legacy []models.LegacyFeedback) ([]models.Feedback, error) {
	converted := ConvertLegacyFeedback(legacy)
	if len(converted) == 0 {
		return nil, nil
	}
	if err := s.db.Create(&converted).Error; err != nil {
		return nil, err
	}
	return converted, nil
}

// ConvertLegacyFeedback is the pure half of ImportLegacy. Ratings are
// clamped into 1..5 since the legacy store never validated them.
func ConvertLegacyFeedback(legacy []models.LegacyFeedback) []models.Feedback {
	out := make([]models.Feedback, 0, len(legacy)*2)
	for _, l := range legacy {
		out = append(out,
			models.Feedback{
				StudentName:  l.StudentName,
				StudentEmail: l.StudentEmail,
				FeedbackType: models.FeedbackTypeFoodQuality,
				Rating:       clampRating(l.FoodRating),
				Message:      l.Comment,
				Status:       models.FeedbackStatusPending,
			},
			models.Feedback{
				StudentName:  l.StudentName,
				StudentEmail: l.StudentEmail,
				FeedbackType: models.FeedbackTypeService,
				Rating:       clampRating(l.ServiceRating),
				Message:      l.Comment,
				Status:       models.FeedbackStatusPending,
			},
		)
	}
	return out
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
