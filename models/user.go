package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeStudent = "STUDENT"
	UserTypeStaff   = "STAFF"
	UserTypeAdmin   = "ADMIN"
)

// RollNumberPlaceholder marks students without an assigned roll number.
// Placeholder rolls are excluded from uniqueness checks.
const RollNumberPlaceholder = "Not Assigned"

type User struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	UserType   string `gorm:"size:20;not null;default:STUDENT" json:"userType"`
	RollNumber string `json:"rollNumber"`
	Hostel     string `json:"hostel"`
	Room       string `json:"room"`
	Phone      string `json:"phone"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}

// HasRollNumber reports whether the user carries a real roll number,
// i.e. non-empty and not the placeholder sentinel.
func (u User) HasRollNumber() bool {
	return u.RollNumber != "" && u.RollNumber != RollNumberPlaceholder
}
