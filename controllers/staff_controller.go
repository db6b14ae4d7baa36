package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

func (h *StaffController) Create(c *gin.Context) {
	var input services.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.Staff.Create(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "staff member created successfully", member)
}

func (h *StaffController) List(c *gin.Context) {
	list, err := h.Staff.List(c.Query("status"), c.Query("query"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load staff")
		return
	}
	utils.OK(c, "staff retrieved successfully", list)
}

func (h *StaffController) SetStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	member, err := h.Staff.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "staff status updated successfully", member)
}

func (h *StaffController) Delete(c *gin.Context) {
	if err := h.Staff.Delete(c.Param("id")); err != nil {
		utils.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	utils.OK(c, "staff member removed", nil)
}
