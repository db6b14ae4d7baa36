package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type ComplaintController struct {
	Complaints *services.ComplaintService
}

func NewComplaintController(complaints *services.ComplaintService) *ComplaintController {
	return &ComplaintController{Complaints: complaints}
}

func (h *ComplaintController) Create(c *gin.Context) {
	var input services.ComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := h.Complaints.Create(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "complaint submitted successfully", complaint)
}

func (h *ComplaintController) List(c *gin.Context) {
	list, err := h.Complaints.List(c.Query("status"), c.Query("priority"), c.Query("query"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load complaints")
		return
	}
	utils.OK(c, "complaints retrieved successfully", list)
}

func (h *ComplaintController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	complaint, err := h.Complaints.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "complaint status updated successfully", complaint)
}
