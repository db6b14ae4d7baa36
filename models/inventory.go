package models

const (
	StockStatusLow    = "low"
	StockStatusMedium = "medium"
	StockStatusGood   = "good"
)

// InventoryItem lives in the inventory snapshot (staff dashboard concern,
// no backend table).
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	MinStock float64 `json:"minStock" validate:"gte=0"`
}

// StockStatus derives the display state: low when at or under the minimum,
// medium up to twice the minimum, good above that.
func (i InventoryItem) StockStatus() string {
	switch {
	case i.Quantity <= i.MinStock:
		return StockStatusLow
	case i.Quantity <= i.MinStock*2:
		return StockStatusMedium
	default:
		return StockStatusGood
	}
}
