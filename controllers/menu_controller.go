package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

func (h *MenuController) CreateMenuItem(c *gin.Context) {
	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Menus.CreateMenuItem(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "menu item created successfully", item)
}

func (h *MenuController) ListMenuItems(c *gin.Context) {
	items, err := h.Menus.ListMenuItems()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load menu items")
		return
	}
	utils.OK(c, "menu items retrieved successfully", items)
}

func (h *MenuController) MenuItemsByMealType(c *gin.Context) {
	items, err := h.Menus.MenuItemsByMealType(c.Param("mealType"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load menu items")
		return
	}
	utils.OK(c, "menu items retrieved successfully", items)
}

func (h *MenuController) VegetarianMenuItems(c *gin.Context) {
	items, err := h.Menus.VegetarianMenuItems()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load menu items")
		return
	}
	utils.OK(c, "vegetarian menu items retrieved successfully", items)
}

func (h *MenuController) SearchMenuItems(c *gin.Context) {
	items, err := h.Menus.SearchMenuItems(c.Query("name"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "search failed")
		return
	}
	utils.OK(c, "menu items retrieved successfully", items)
}

// UploadMenuItemImage accepts { "image_base64": "data:…" } and stores the
// image for one menu item.
func (h *MenuController) UploadMenuItemImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "menu-item")
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	item, err := h.Menus.SetMenuItemImage(uint(id), url)
	if err != nil {
		utils.Fail(c, http.StatusNotFound, "menu item not found")
		return
	}
	utils.OK(c, "image uploaded successfully", item)
}

type submitDailyMenuInput struct {
	MenuDate string                   `json:"menuDate" binding:"required"`
	MealType string                   `json:"mealType" binding:"required"`
	Items    []services.MenuItemInput `json:"items" binding:"required"`
}

// SubmitDailyMenu is the multi-item submission: per-item failures are
// reported alongside the successful subset, never collapsed.
func (h *MenuController) SubmitDailyMenu(c *gin.Context) {
	var input submitDailyMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", input.MenuDate)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid menuDate")
		return
	}

	result, err := h.Menus.SubmitDailyMenu(date, input.MealType, input.Items)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if result.AllFailed() {
		utils.Fail(c, http.StatusBadRequest, "no menu items could be created")
		return
	}
	if len(result.Failed) > 0 {
		utils.OK(c, "daily menu created with some failures", result)
		return
	}
	utils.Created(c, "daily menu created successfully", result)
}

func (h *MenuController) DailyMenusByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid date")
		return
	}

	menus, err := h.Menus.DailyMenusByDate(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load daily menus")
		return
	}
	utils.OK(c, "daily menus retrieved successfully", menus)
}

func (h *MenuController) WeeklyMenus(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid endDate")
		return
	}
	if end.Before(start) {
		utils.Fail(c, http.StatusBadRequest, "endDate must be on/after startDate")
		return
	}

	menus, err := h.Menus.DailyMenusInRange(start, end)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load daily menus")
		return
	}
	utils.OK(c, "daily menus retrieved successfully", menus)
}

func (h *MenuController) TodayByMealType(c *gin.Context) {
	menu, err := h.Menus.TodayByMealType(c.Param("mealType"))
	if err != nil {
		// No menu for this meal today is an empty state, not a failure.
		utils.OK(c, "no menu for this meal today", nil)
		return
	}
	utils.OK(c, "daily menu retrieved successfully", menu)
}

type bookMealInput struct {
	DailyMenuID         uint   `json:"dailyMenuId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (h *MenuController) BookMeal(c *gin.Context) {
	var input bookMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.Menus.CreateBooking(input.DailyMenuID, c.GetUint("userID"),
		input.Quantity, input.SpecialInstructions)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "meal booked successfully", booking)
}

// BookingStatsByDate returns the per-(date, meal) rollup rows for one
// date plus their zero-filled summary, in presentation order.
func (h *MenuController) BookingStatsByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid date")
		return
	}

	stats, err := h.Menus.BookingStatsByDate(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load booking stats")
		return
	}
	utils.OK(c, "booking stats retrieved successfully", gin.H{
		"stats":   services.SortForDisplay(stats),
		"summary": services.Summarize(stats),
	})
}

func (h *MenuController) BookingStatsAll(c *gin.Context) {
	stats, err := h.Menus.BookingStatsAll()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load booking stats")
		return
	}
	utils.OK(c, "booking stats retrieved successfully", gin.H{
		"stats":   services.SortForDisplay(stats),
		"summary": services.Summarize(stats),
	})
}
