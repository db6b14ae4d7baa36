package models

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderStatuses in lifecycle order; used when zero-filling status counts.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

type MealOrder struct {
	gorm.Model
	UserID              uint       `gorm:"not null;index" json:"userId"`
	User                User       `json:"-"`
	MenuItems           []MenuItem `gorm:"many2many:meal_order_items" json:"menuItems"`
	TotalAmount         float64    `gorm:"not null" json:"totalAmount"`
	MealType            string     `gorm:"size:20;not null;index" json:"mealType"`
	SpecialInstructions string     `gorm:"type:text" json:"specialInstructions,omitempty"`
	Status              string     `gorm:"size:20;not null;default:PENDING" json:"status"`
}
