package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/store"
)

// InventoryService manages the inventory snapshot (staff dashboard
// concern, no backend table). Low-stock transitions raise alerts.
type InventoryService struct {
	store store.Store
}

func NewInventoryService(st store.Store) *InventoryService {
	return &InventoryService{store: st}
}

// InventoryView decorates an item with its derived stock status.
type InventoryView struct {
	models.InventoryItem
	Status string `json:"status"`
}

func (s *InventoryService) List(category, query string) ([]InventoryView, error) {
	var items []models.InventoryItem
	if _, err := s.store.Get(store.KeyInventory, &items); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	filtered := ApplyFilters(items,
		FieldEquals(category, func(i models.InventoryItem) string { return i.Category }),
		TextSearch(query, func(i models.InventoryItem) []string { return []string{i.Name} }),
	)

	views := make([]InventoryView, len(filtered))
	for i, item := range filtered {
		views[i] = InventoryView{InventoryItem: item, Status: item.StockStatus()}
	}
	return views, nil
}

func (s *InventoryService) Add(item models.InventoryItem) (*InventoryView, error) {
	if err := validate.Struct(item); err != nil {
		return nil, fmt.Errorf("invalid inventory item: %w", err)
	}
	item.ID = uuid.NewString()

	var items []models.InventoryItem
	err := s.store.Update(store.KeyInventory, &items, func() error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := InventoryView{InventoryItem: item, Status: item.StockStatus()}
	if view.Status == models.StockStatusLow {
		EmitAlert(models.AlertAudienceStaff, "warning",
			fmt.Sprintf("%s is running low (%.1f %s remaining)", item.Name, item.Quantity, item.Unit))
	}
	return &view, nil
}

func (s *InventoryService) Update(item models.InventoryItem) (*InventoryView, error) {
	if item.ID == "" {
		return nil, errors.New("inventory item id required")
	}
	if err := validate.Struct(item); err != nil {
		return nil, fmt.Errorf("invalid inventory item: %w", err)
	}

	var items []models.InventoryItem
	err := s.store.Update(store.KeyInventory, &items, func() error {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item
				return nil
			}
		}
		return fmt.Errorf("inventory item %s not found", item.ID)
	})
	if err != nil {
		return nil, err
	}

	view := InventoryView{InventoryItem: item, Status: item.StockStatus()}
	if view.Status == models.StockStatusLow {
		EmitAlert(models.AlertAudienceStaff, "warning",
			fmt.Sprintf("%s is running low (%.1f %s remaining)", item.Name, item.Quantity, item.Unit))
	}
	return &view, nil
}

func (s *InventoryService) Delete(id string) error {
	var items []models.InventoryItem
	return s.store.Update(store.KeyInventory, &items, func() error {
		for i := range items {
			if items[i].ID == id {
				items = append(items[:i], items[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("inventory item %s not found", id)
	})
}

// LowStock returns the items at or under their minimum, for the staff
// dashboard alert strip.
func (s *InventoryService) LowStock() ([]InventoryView, error) {
	views, err := s.List("", "")
	if err != nil {
		return nil, err
	}
	low := make([]InventoryView, 0)
	for _, v := range views {
		if v.Status == models.StockStatusLow {
			low = append(low, v)
		}
	}
	return low, nil
}
