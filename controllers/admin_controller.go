package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type AdminController struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Menus    *services.MenuService
	Orders   *services.OrderService
	Feedback *services.FeedbackService
}

func NewAdminController(
	auth *services.AuthService,
	users *services.UserService,
	menus *services.MenuService,
	orders *services.OrderService,
	feedback *services.FeedbackService,
) *AdminController {
	return &AdminController{Auth: auth, Users: users, Menus: menus, Orders: orders, Feedback: feedback}
}

func (h *AdminController) VerifyPassword(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	ok, err := h.Auth.VerifyPassword(c.GetUint("userID"), input.Password)
	if err != nil {
		utils.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	utils.OK(c, "password verified", gin.H{"valid": ok})
}

func (h *AdminController) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.Auth.ChangePassword(c.GetUint("userID"),
		input.CurrentPassword, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "password changed successfully", nil)
}

func (h *AdminController) GetProfile(c *gin.Context) {
	user, err := h.Users.FindByID(c.GetUint("userID"))
	if err != nil {
		utils.Fail(c, http.StatusNotFound, "admin not found")
		return
	}
	utils.OK(c, "admin profile retrieved successfully", user)
}

// Overview assembles the admin dashboard cards for one date: booking
// summary with estimated revenue, order status counts and revenue, and
// feedback averages.
func (h *AdminController) Overview(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	daily, err := h.Menus.SummaryForDate(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load booking summary")
		return
	}
	orders, err := h.Orders.SummaryForDate(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load order summary")
		return
	}
	feedback, err := h.Feedback.Stats()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load feedback stats")
		return
	}

	utils.OK(c, "overview retrieved successfully", gin.H{
		"bookings": daily,
		"orders":   orders,
		"feedback": feedback,
	})
}
