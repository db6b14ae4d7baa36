package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/store"
	"github.com/JashanBansal182304/MessMate/utils"
)

// DevController seeds sample data so a fresh deployment has something to
// show. Gated to admins by the route setup.
type DevController struct {
	Store    store.Store
	Feedback *services.FeedbackService
}

func NewDevController(st store.Store, feedback *services.FeedbackService) *DevController {
	return &DevController{Store: st, Feedback: feedback}
}

var sampleInventory = []models.InventoryItem{
	{ID: "seed-1", Name: "Rice", Category: "grains", Quantity: 50, Unit: "kg", MinStock: 10},
	{ID: "seed-2", Name: "Wheat Flour", Category: "grains", Quantity: 30, Unit: "kg", MinStock: 5},
	{ID: "seed-3", Name: "Dal", Category: "pulses", Quantity: 25, Unit: "kg", MinStock: 5},
	{ID: "seed-4", Name: "Onions", Category: "vegetables", Quantity: 20, Unit: "kg", MinStock: 5},
	{ID: "seed-5", Name: "Potatoes", Category: "vegetables", Quantity: 40, Unit: "kg", MinStock: 10},
	{ID: "seed-6", Name: "Tomatoes", Category: "vegetables", Quantity: 15, Unit: "kg", MinStock: 5},
	{ID: "seed-7", Name: "Salt", Category: "spices", Quantity: 5, Unit: "kg", MinStock: 1},
	{ID: "seed-8", Name: "Turmeric", Category: "spices", Quantity: 2, Unit: "kg", MinStock: 0.5},
	{ID: "seed-9", Name: "Milk", Category: "dairy", Quantity: 20, Unit: "l", MinStock: 5},
	{ID: "seed-10", Name: "Oil", Category: "other", Quantity: 10, Unit: "l", MinStock: 2},
}

var sampleFeedback = []services.FeedbackInput{
	{StudentName: "Rahul Sharma", StudentEmail: "rahul.sharma@university.edu", FeedbackType: models.FeedbackTypeFoodQuality, Rating: 4, Message: "Dal was great today, rice slightly undercooked."},
	{StudentName: "Priya Patel", StudentEmail: "priya.patel@university.edu", FeedbackType: models.FeedbackTypeService, Rating: 5, Message: "Serving staff were quick and friendly."},
	{StudentName: "Amit Kumar", StudentEmail: "amit.kumar@university.edu", FeedbackType: models.FeedbackTypeCleanliness, Rating: 3, Message: "Tables near the entrance need more frequent cleaning."},
}

// SeedSampleData populates the inventory snapshot and a few feedback
// records. Idempotent: existing inventory is left alone, feedback is
// only inserted when the table is empty.
func (d *DevController) SeedSampleData(c *gin.Context) {
	seeded := gin.H{"inventory": false, "feedback": false}

	var items []models.InventoryItem
	_, err := d.Store.Get(store.KeyInventory, &items)
	if errors.Is(err, store.ErrNotFound) || len(items) == 0 {
		if err := d.Store.Set(store.KeyInventory, sampleInventory); err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to seed inventory")
			return
		}
		seeded["inventory"] = true
	} else if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to read inventory")
		return
	}

	existing, err := d.Feedback.List()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to read feedback")
		return
	}
	if len(existing) == 0 {
		for _, input := range sampleFeedback {
			if _, err := d.Feedback.Create(input); err != nil {
				utils.Fail(c, http.StatusInternalServerError, "failed to seed feedback")
				return
			}
		}
		seeded["feedback"] = true
	}

	utils.OK(c, "sample data seeded", seeded)
}
