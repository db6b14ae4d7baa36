package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (h *UserController) ListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	utils.OK(c, "users retrieved successfully", users)
}

func (h *UserController) UsersByType(c *gin.Context) {
	users, err := h.Users.UsersByType(c.Param("userType"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	utils.OK(c, "users retrieved successfully", users)
}

func (h *UserController) SearchUsers(c *gin.Context) {
	users, err := h.Users.SearchUsers(c.Query("query"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "search failed")
		return
	}
	utils.OK(c, "users retrieved successfully", users)
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := h.Users.FindByID(userID)
	if err != nil {
		utils.Fail(c, http.StatusNotFound, "user not found")
		return
	}
	utils.OK(c, "profile retrieved successfully", user)
}
