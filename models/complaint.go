package models

import "time"

const (
	ComplaintStatusPending    = "pending"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusSolved     = "solved"
)

const (
	ComplaintPriorityLow    = "low"
	ComplaintPriorityMedium = "medium"
	ComplaintPriorityHigh   = "high"
)

// Complaint lives in the local snapshot store, not in Postgres: the original
// system never had a backend endpoint for complaints.
type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Student     string    `json:"student"`
	StudentID   string    `json:"studentId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Date        time.Time `json:"date"`
}
