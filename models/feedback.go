package models

import (
	"gorm.io/gorm"
)

const (
	FeedbackTypeFoodQuality = "FOOD_QUALITY"
	FeedbackTypeService     = "SERVICE"
	FeedbackTypeCleanliness = "CLEANLINESS"
	FeedbackTypeGeneral     = "GENERAL"
)

const (
	FeedbackStatusPending  = "PENDING"
	FeedbackStatusReviewed = "REVIEWED"
	FeedbackStatusResolved = "RESOLVED"
)

// Feedback is the canonical server shape: one rating, one type.
type Feedback struct {
	gorm.Model
	StudentName  string `gorm:"not null" json:"studentName"`
	StudentEmail string `gorm:"not null;index" json:"studentEmail"`
	FeedbackType string `gorm:"size:30;not null;default:GENERAL" json:"feedbackType"`
	Rating       int    `gorm:"not null" json:"rating"`
	Message      string `gorm:"type:text" json:"message"`
	Status       string `gorm:"size:20;not null;default:PENDING" json:"status"`
	StaffReply   string `gorm:"type:text" json:"staffReply,omitempty"`
}

// LegacyFeedback is the old local-only dual-rating shape. It is accepted
// as an import format only; see FeedbackService.ImportLegacy.
type LegacyFeedback struct {
	StudentName   string `json:"studentName"`
	StudentEmail  string `json:"studentEmail"`
	FoodRating    int    `json:"foodRating"`
	ServiceRating int    `json:"serviceRating"`
	Comment       string `json:"comment"`
}
