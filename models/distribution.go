package models

import "time"

// DistributionEntry records one meal-distribution session logged by staff.
// Stored in the meal-distribution-log snapshot.
type DistributionEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	MealType    string    `json:"mealType"`
	ServedCount int       `json:"servedCount"`
	StaffName   string    `json:"staffName"`
	Notes       string    `json:"notes,omitempty"`
}
