package services

import (
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JashanBansal182304/MessMate/models"
)

// mealOrder fixes the secondary sort key: BREAKFAST < LUNCH < DINNER.
var mealOrder = map[string]int{
	models.MealTypeBreakfast: 1,
	models.MealTypeLunch:     2,
	models.MealTypeDinner:    3,
}

type MealTotal struct {
	TotalQuantity int `json:"totalQuantity"`
	TotalBookings int `json:"totalBookings"`
}

// BookingSummary is the derived view model for the booking dashboards.
// PerMeal always carries every meal type, zero-filled when absent from
// the input.
type BookingSummary struct {
	PerMeal            map[string]MealTotal `json:"perMeal"`
	GrandTotalQuantity int                  `json:"grandTotalQuantity"`
	GrandTotalBookings int                  `json:"grandTotalBookings"`
}

// Summarize folds booking stats into per-meal-type totals plus a grand
// total. An empty input yields an all-zero summary, never an error: the
// gateway treats "no data for this date" the same as an empty list.
func Summarize(stats []models.BookingStat) BookingSummary {
	out := BookingSummary{PerMeal: make(map[string]MealTotal, len(models.MealTypes))}
	for _, mt := range models.MealTypes {
		out.PerMeal[mt] = MealTotal{}
	}

	for _, st := range stats {
		tot, ok := out.PerMeal[st.MealType]
		if !ok {
			logrus.WithField("mealType", st.MealType).Warn("booking stat with unknown meal type skipped")
			continue
		}
		tot.TotalQuantity += st.TotalQuantity
		tot.TotalBookings += st.TotalBookings
		out.PerMeal[st.MealType] = tot

		out.GrandTotalQuantity += st.TotalQuantity
		out.GrandTotalBookings += st.TotalBookings
	}
	return out
}

// SortForDisplay returns a copy of stats in presentation order: date
// descending (most recent first), then meal type in fixed order.
func SortForDisplay(stats []models.BookingStat) []models.BookingStat {
	sorted := make([]models.BookingStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := dateOnly(sorted[i].MenuDate), dateOnly(sorted[j].MenuDate)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return mealOrder[sorted[i].MealType] < mealOrder[sorted[j].MealType]
	})
	return sorted
}

// EstimateRevenue computes the admin-overview revenue estimate: for each
// daily menu, the sum of its item prices times the booking count for that
// menu's (date, meal type). Menus with no matching stat contribute zero;
// their item prices are not counted at all.
func EstimateRevenue(menus []models.DailyMenu, stats []models.BookingStat) float64 {
	type key struct {
		date string
		meal string
	}
	bookings := make(map[key]int, len(stats))
	for _, st := range stats {
		k := key{date: st.MenuDate.Format("2006-01-02"), meal: st.MealType}
		bookings[k] += st.TotalBookings
	}

	var total float64
	for _, menu := range menus {
		count, ok := bookings[key{date: menu.MenuDate.Format("2006-01-02"), meal: menu.MealType}]
		if !ok {
			continue
		}
		var priceSum float64
		for _, item := range menu.MenuItems {
			priceSum += item.Price
		}
		total += priceSum * float64(count)
	}
	return math.Round(total*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
