package services_test

import (
	"testing"
	"time"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarizeZeroFillsEveryMealType(t *testing.T) {
	t.Parallel()
	stats := []models.BookingStat{
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeLunch, TotalQuantity: 10, TotalBookings: 4},
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeDinner, TotalQuantity: 5, TotalBookings: 2},
	}

	sum := services.Summarize(stats)

	want := map[string]services.MealTotal{
		models.MealTypeBreakfast: {},
		models.MealTypeLunch:     {TotalQuantity: 10, TotalBookings: 4},
		models.MealTypeDinner:    {TotalQuantity: 5, TotalBookings: 2},
	}
	for meal, wantTot := range want {
		got, ok := sum.PerMeal[meal]
		if !ok {
			t.Fatalf("meal type %s missing from summary", meal)
		}
		if got != wantTot {
			t.Fatalf("%s: got %+v, want %+v", meal, got, wantTot)
		}
	}
	if sum.GrandTotalQuantity != 15 {
		t.Fatalf("grand total quantity = %d, want 15", sum.GrandTotalQuantity)
	}
	if sum.GrandTotalBookings != 6 {
		t.Fatalf("grand total bookings = %d, want 6", sum.GrandTotalBookings)
	}
}

func TestSummarizeEmptyInputYieldsZeros(t *testing.T) {
	t.Parallel()
	sum := services.Summarize(nil)

	if len(sum.PerMeal) != 3 {
		t.Fatalf("expected 3 meal types, got %d", len(sum.PerMeal))
	}
	for meal, tot := range sum.PerMeal {
		if tot.TotalQuantity != 0 || tot.TotalBookings != 0 {
			t.Fatalf("%s not zeroed: %+v", meal, tot)
		}
	}
	if sum.GrandTotalQuantity != 0 {
		t.Fatalf("grand total = %d, want 0", sum.GrandTotalQuantity)
	}
}

func TestSummarizePerMealTotalsAddUpToGrandTotal(t *testing.T) {
	t.Parallel()
	stats := []models.BookingStat{
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeBreakfast, TotalQuantity: 3, TotalBookings: 1},
		{MenuDate: day("2025-01-02"), MealType: models.MealTypeBreakfast, TotalQuantity: 7, TotalBookings: 2},
		{MenuDate: day("2025-01-02"), MealType: models.MealTypeLunch, TotalQuantity: 11, TotalBookings: 6},
		{MenuDate: day("2025-01-03"), MealType: models.MealTypeDinner, TotalQuantity: 2, TotalBookings: 2},
	}

	sum := services.Summarize(stats)

	var perMeal int
	for _, tot := range sum.PerMeal {
		perMeal += tot.TotalQuantity
	}
	if perMeal != sum.GrandTotalQuantity {
		t.Fatalf("per-meal sum %d != grand total %d", perMeal, sum.GrandTotalQuantity)
	}
}

func TestSortForDisplayDateDescThenMealOrder(t *testing.T) {
	t.Parallel()
	stats := []models.BookingStat{
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeDinner},
		{MenuDate: day("2025-01-02"), MealType: models.MealTypeLunch},
		{MenuDate: day("2025-01-02"), MealType: models.MealTypeBreakfast},
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeBreakfast},
	}

	sorted := services.SortForDisplay(stats)

	wantDates := []string{"2025-01-02", "2025-01-02", "2025-01-01", "2025-01-01"}
	wantMeals := []string{
		models.MealTypeBreakfast, models.MealTypeLunch,
		models.MealTypeBreakfast, models.MealTypeDinner,
	}
	for i := range sorted {
		if got := sorted[i].MenuDate.Format("2006-01-02"); got != wantDates[i] {
			t.Fatalf("pos %d: date %s, want %s", i, got, wantDates[i])
		}
		if sorted[i].MealType != wantMeals[i] {
			t.Fatalf("pos %d: meal %s, want %s", i, sorted[i].MealType, wantMeals[i])
		}
	}

	// Input order untouched.
	if stats[0].MealType != models.MealTypeDinner {
		t.Fatal("SortForDisplay mutated its input")
	}
}

func TestEstimateRevenue(t *testing.T) {
	t.Parallel()
	menus := []models.DailyMenu{
		{
			MenuDate: day("2025-01-01"),
			MealType: models.MealTypeLunch,
			MenuItems: []models.MenuItem{
				{Price: 40}, {Price: 25},
			},
		},
		{
			// No bookings for dinner: contributes nothing.
			MenuDate: day("2025-01-01"),
			MealType: models.MealTypeDinner,
			MenuItems: []models.MenuItem{
				{Price: 90},
			},
		},
	}
	stats := []models.BookingStat{
		{MenuDate: day("2025-01-01"), MealType: models.MealTypeLunch, TotalQuantity: 10, TotalBookings: 4},
	}

	got := services.EstimateRevenue(menus, stats)
	if want := 260.0; got != want { // (40+25) * 4
		t.Fatalf("revenue = %v, want %v", got, want)
	}
}

func TestEstimateRevenueEmptyInputs(t *testing.T) {
	t.Parallel()
	if got := services.EstimateRevenue(nil, nil); got != 0 {
		t.Fatalf("revenue = %v, want 0", got)
	}
}
