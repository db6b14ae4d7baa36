package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderInput struct {
	UserEmail           string `json:"userEmail" validate:"required,email"`
	MenuItemIDs         []uint `json:"menuItemIds" validate:"required,min=1"`
	MealType            string `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateOrder validates the request, resolves user and items, and creates
// a PENDING order with the total computed from actual item prices. Any
// missing item rejects the whole order before a write happens.
func (s *OrderService) CreateOrder(input OrderInput) (*models.MealOrder, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, "email = ?", input.UserEmail).Error; err != nil {
		return nil, fmt.Errorf("user not found: %s", input.UserEmail)
	}

	var items []models.MenuItem
	if err := s.db.Find(&items, input.MenuItemIDs).Error; err != nil {
		return nil, err
	}
	if len(items) != len(input.MenuItemIDs) {
		return nil, errors.New("one or more menu items not found")
	}

	var total float64
	for _, it := range items {
		total += it.Price
	}

	order := models.MealOrder{
		UserID:              user.ID,
		MenuItems:           items,
		TotalAmount:         total,
		MealType:            strings.ToUpper(input.MealType),
		SpecialInstructions: input.SpecialInstructions,
		Status:              models.OrderStatusPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) UpdateStatus(id uint, status string) (*models.MealOrder, error) {
	status = strings.ToUpper(status)
	valid := false
	for _, st := range models.OrderStatuses {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid order status %q", status)
	}

	var order models.MealOrder
	if err := s.db.Preload("MenuItems").First(&order, id).Error; err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) TodayByMealType(mealType string) ([]models.MealOrder, error) {
	start := dateOnly(time.Now())
	end := start.AddDate(0, 0, 1)

	var orders []models.MealOrder
	err := s.db.Preload("MenuItems").
		Where("meal_type = ? AND created_at >= ? AND created_at < ?",
			strings.ToUpper(mealType), start, end).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) UserOrders(userID uint) ([]models.MealOrder, error) {
	var orders []models.MealOrder
	err := s.db.Preload("MenuItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) Cancel(id uint) (*models.MealOrder, error) {
	return s.UpdateStatus(id, models.OrderStatusCancelled)
}

// OrderSummary is the per-date admin view: status counts are zero-filled
// for every status so the cards never show a missing value.
type OrderSummary struct {
	Date         string             `json:"date"`
	TotalOrders  int                `json:"totalOrders"`
	StatusCounts map[string]int     `json:"statusCounts"`
	TotalRevenue float64            `json:"totalRevenue"`
	Orders       []models.MealOrder `json:"orders"`
}

func (s *OrderService) SummaryForDate(date time.Time) (*OrderSummary, error) {
	start := dateOnly(date)
	end := start.AddDate(0, 0, 1)

	var orders []models.MealOrder
	err := s.db.Preload("MenuItems").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	sum := &OrderSummary{
		Date:         start.Format("2006-01-02"),
		TotalOrders:  len(orders),
		StatusCounts: make(map[string]int, len(models.OrderStatuses)),
		Orders:       orders,
	}
	for _, st := range models.OrderStatuses {
		sum.StatusCounts[st] = 0
	}
	for _, o := range orders {
		sum.StatusCounts[o.Status]++
		sum.TotalRevenue += o.TotalAmount
	}
	return sum, nil
}
