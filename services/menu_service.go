package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

type MenuItemInput struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	MealType     string  `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER"`
	Category     string  `json:"category"`
	IsVegetarian bool    `json:"isVegetarian"`
}

func (s *MenuService) CreateMenuItem(input MenuItemInput) (*models.MenuItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid menu item: %w", err)
	}
	item := models.MenuItem{
		Name:         input.Name,
		Price:        input.Price,
		MealType:     input.MealType,
		Category:     input.Category,
		IsVegetarian: input.IsVegetarian,
		IsAvailable:  true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Order("meal_type, name").Find(&items).Error
	return items, err
}

func (s *MenuService) MenuItemsByMealType(mealType string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("meal_type = ? AND is_available = ?", strings.ToUpper(mealType), true).
		Order("name").Find(&items).Error
	return items, err
}

func (s *MenuService) VegetarianMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("is_vegetarian = ? AND is_available = ?", true, true).
		Order("name").Find(&items).Error
	return items, err
}

func (s *MenuService) SearchMenuItems(name string) ([]models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if len(name) < MinSearchLength {
		return s.ListMenuItems()
	}
	var items []models.MenuItem
	err := s.db.Where("LOWER(name) LIKE ? AND is_available = ?", "%"+strings.ToLower(name)+"%", true).
		Order("name").Find(&items).Error
	return items, err
}

func (s *MenuService) SetMenuItemImage(id uint, url string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	item.ImageURL = url
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetOrCreateDailyMenu enforces one DailyMenu per (date, mealType) pair.
func (s *MenuService) GetOrCreateDailyMenu(date time.Time, mealType string) (*models.DailyMenu, error) {
	mealType = strings.ToUpper(mealType)
	if mealOrder[mealType] == 0 {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}

	var menu models.DailyMenu
	err := s.db.Preload("MenuItems").
		Where("menu_date = ? AND meal_type = ? AND is_active = ?", dateOnly(date), mealType, true).
		First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		menu = models.DailyMenu{MenuDate: dateOnly(date), MealType: mealType, IsActive: true}
		if err := s.db.Create(&menu).Error; err != nil {
			return nil, err
		}
		return &menu, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// AddItemsToDailyMenu appends items to a daily menu, skipping any item
// already on it so repeated submissions never duplicate entries.
func (s *MenuService) AddItemsToDailyMenu(menuID uint, itemIDs []uint) (*models.DailyMenu, error) {
	var menu models.DailyMenu
	if err := s.db.Preload("MenuItems").First(&menu, menuID).Error; err != nil {
		return nil, err
	}

	existing := make(map[uint]struct{}, len(menu.MenuItems))
	for _, it := range menu.MenuItems {
		existing[it.ID] = struct{}{}
	}

	var toAdd []models.MenuItem
	for _, id := range itemIDs {
		if _, dup := existing[id]; dup {
			continue
		}
		var item models.MenuItem
		if err := s.db.First(&item, id).Error; err != nil {
			return nil, fmt.Errorf("menu item %d not found", id)
		}
		toAdd = append(toAdd, item)
		existing[id] = struct{}{}
	}

	if len(toAdd) > 0 {
		if err := s.db.Model(&menu).Association("MenuItems").Append(&toAdd); err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("MenuItems").First(&menu, menuID).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *MenuService) DailyMenusByDate(date time.Time) ([]models.DailyMenu, error) {
	var menus []models.DailyMenu
	err := s.db.Preload("MenuItems").
		Where("menu_date = ? AND is_active = ?", dateOnly(date), true).
		Find(&menus).Error
	return menus, err
}

func (s *MenuService) DailyMenusInRange(start, end time.Time) ([]models.DailyMenu, error) {
	var menus []models.DailyMenu
	err := s.db.Preload("MenuItems").
		Where("menu_date BETWEEN ? AND ? AND is_active = ?", dateOnly(start), dateOnly(end), true).
		Order("menu_date").
		Find(&menus).Error
	return menus, err
}

func (s *MenuService) TodayByMealType(mealType string) (*models.DailyMenu, error) {
	var menu models.DailyMenu
	err := s.db.Preload("MenuItems").
		Where("menu_date = ? AND meal_type = ? AND is_active = ?",
			dateOnly(time.Now()), strings.ToUpper(mealType), true).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// CreateBooking books servings against a daily menu. A second booking for
// the same menu and user accumulates quantity and appends instructions
// instead of creating a parallel row.
func (s *MenuService) CreateBooking(dailyMenuID, userID uint, quantity int, instructions string) (*models.MealBooking, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	var menu models.DailyMenu
	if err := s.db.First(&menu, dailyMenuID).Error; err != nil {
		return nil, fmt.Errorf("daily menu %d not found", dailyMenuID)
	}

	var existing models.MealBooking
	err := s.db.Where("daily_menu_id = ? AND user_id = ? AND status = ?",
		dailyMenuID, userID, models.BookingStatusConfirmed).
		First(&existing).Error
	if err == nil {
		existing.Quantity += quantity
		if instructions != "" {
			if existing.SpecialInstructions != "" {
				existing.SpecialInstructions += "; "
			}
			existing.SpecialInstructions += instructions
		}
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	booking := models.MealBooking{
		DailyMenuID:         dailyMenuID,
		UserID:              userID,
		Quantity:            quantity,
		SpecialInstructions: instructions,
		Status:              models.BookingStatusConfirmed,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingStatsByDate rolls confirmed bookings up into per-(date, meal)
// rows. No bookings is an empty slice, not an error.
func (s *MenuService) BookingStatsByDate(date time.Time) ([]models.BookingStat, error) {
	return s.bookingStats(s.db.Where("daily_menus.menu_date = ?", dateOnly(date)))
}

func (s *MenuService) BookingStatsAll() ([]models.BookingStat, error) {
	return s.bookingStats(s.db)
}

func (s *MenuService) bookingStats(tx *gorm.DB) ([]models.BookingStat, error) {
	var stats []models.BookingStat
	err := tx.Model(&models.MealBooking{}).
		Select("daily_menus.menu_date AS menu_date, daily_menus.meal_type AS meal_type, "+
			"SUM(meal_bookings.quantity) AS total_quantity, COUNT(meal_bookings.id) AS total_bookings").
		Joins("JOIN daily_menus ON daily_menus.id = meal_bookings.daily_menu_id").
		Where("meal_bookings.status = ?", models.BookingStatusConfirmed).
		Group("daily_menus.menu_date, daily_menus.meal_type").
		Scan(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return stats, err
}

// DailySummary is the admin-overview view model for one date.
type DailySummary struct {
	Date             string         `json:"date"`
	Bookings         BookingSummary `json:"bookings"`
	EstimatedRevenue float64        `json:"estimatedRevenue"`
}

func (s *MenuService) SummaryForDate(date time.Time) (*DailySummary, error) {
	stats, err := s.BookingStatsByDate(date)
	if err != nil {
		return nil, err
	}
	menus, err := s.DailyMenusByDate(date)
	if err != nil {
		return nil, err
	}
	return &DailySummary{
		Date:             dateOnly(date).Format("2006-01-02"),
		Bookings:         Summarize(stats),
		EstimatedRevenue: EstimateRevenue(menus, stats),
	}, nil
}

// BatchFailure records one item of a multi-item submission that did not
// make it.
type BatchFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchResult never collapses "nothing succeeded" and "some succeeded":
// both lists are reported as-is.
type BatchResult struct {
	Menu    *models.DailyMenu `json:"menu,omitempty"`
	Created []models.MenuItem `json:"created"`
	Failed  []BatchFailure    `json:"failed"`
}

func (r BatchResult) AllFailed() bool {
	return len(r.Created) == 0 && len(r.Failed) > 0
}

// SubmitDailyMenu creates the submitted items one by one and attaches the
// successful subset to the (date, mealType) daily menu. Per-item failures
// do not abort the batch.
func (s *MenuService) SubmitDailyMenu(date time.Time, mealType string, items []MenuItemInput) (*BatchResult, error) {
	result := &BatchResult{Created: []models.MenuItem{}, Failed: []BatchFailure{}}

	for _, input := range items {
		input.MealType = strings.ToUpper(mealType)
		item, err := s.CreateMenuItem(input)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{Name: input.Name, Reason: err.Error()})
			continue
		}
		result.Created = append(result.Created, *item)
	}

	if len(result.Created) == 0 {
		return result, nil
	}

	menu, err := s.GetOrCreateDailyMenu(date, mealType)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(result.Created))
	for i, it := range result.Created {
		ids[i] = it.ID
	}
	menu, err = s.AddItemsToDailyMenu(menu.ID, ids)
	if err != nil {
		return nil, err
	}
	result.Menu = menu
	return result, nil
}
