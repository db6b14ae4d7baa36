package models

import "time"

const (
	AlertAudienceAdmin = "ADMIN"
	AlertAudienceStaff = "STAFF"
)

// Alert is a persisted notification surfaced to a dashboard role
// (low stock, new complaint, order ready).
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Audience  string    `gorm:"size:20;index" json:"audience"`
	Type      string    `gorm:"size:20" json:"type"` // "warning" | "info"
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
