package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
)

// MealTypes is the fixed partition key set for booking aggregations,
// in presentation order.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

type MenuItem struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Price        float64 `gorm:"not null" json:"price"`
	MealType     string  `gorm:"size:20;not null;index" json:"mealType"`
	Category     string  `gorm:"size:30" json:"category"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	IsAvailable  bool    `gorm:"default:true" json:"isAvailable"`
	IsVegetarian bool    `gorm:"default:false" json:"isVegetarian"`
}

// One DailyMenu per (menuDate, mealType) pair. Items are appended
// without duplicates; see MenuService.AddItemsToDailyMenu.
type DailyMenu struct {
	gorm.Model
	MenuDate  time.Time  `gorm:"type:date;not null;index:idx_daily_menu_date_meal" json:"menuDate"`
	MealType  string     `gorm:"size:20;not null;index:idx_daily_menu_date_meal" json:"mealType"`
	MenuItems []MenuItem `gorm:"many2many:daily_menu_items" json:"menuItems"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
}

// MealBooking is a student's reservation of servings against one daily menu.
type MealBooking struct {
	gorm.Model
	DailyMenuID         uint      `gorm:"not null;index" json:"dailyMenuId"`
	DailyMenu           DailyMenu `json:"-"`
	UserID              uint      `gorm:"index" json:"userId"`
	Quantity            int       `gorm:"not null;default:1" json:"quantity"`
	SpecialInstructions string    `gorm:"type:text" json:"specialInstructions,omitempty"`
	Status              string    `gorm:"size:20;not null;default:CONFIRMED" json:"status"`
}

const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// BookingStat is a derived rollup of bookings for a (date, meal type) pair.
// It is recomputed from MealBooking rows and consumed read-only.
type BookingStat struct {
	MenuDate      time.Time `json:"menuDate"`
	MealType      string    `json:"mealType"`
	TotalQuantity int       `json:"totalQuantity"`
	TotalBookings int       `json:"totalBookings"`
}
