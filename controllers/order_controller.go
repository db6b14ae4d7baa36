package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (h *OrderController) CreateOrder(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Orders.CreateOrder(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	services.EmitAlert(models.AlertAudienceStaff, "info", "New meal order received")
	utils.Created(c, "order created successfully", order)
}

func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	order, err := h.Orders.UpdateStatus(uint(id), input.Status)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "order status updated successfully", order)
}

func (h *OrderController) TodayByMealType(c *gin.Context) {
	orders, err := h.Orders.TodayByMealType(c.Param("mealType"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	utils.OK(c, "orders retrieved successfully", orders)
}

func (h *OrderController) MyOrders(c *gin.Context) {
	orders, err := h.Orders.UserOrders(c.GetUint("userID"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	utils.OK(c, "orders retrieved successfully", orders)
}

func (h *OrderController) CancelOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Orders.Cancel(uint(id))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "order cancelled", order)
}

func (h *OrderController) SummaryForDate(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	summary, err := h.Orders.SummaryForDate(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load order summary")
		return
	}
	utils.OK(c, "order summary retrieved successfully", summary)
}
