package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

func (h *FeedbackController) Create(c *gin.Context) {
	var input services.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	fb, err := h.Feedback.Create(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "feedback submitted successfully", fb)
}

func (h *FeedbackController) List(c *gin.Context) {
	list, err := h.Feedback.List()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load feedback")
		return
	}
	utils.OK(c, "feedback retrieved successfully", list)
}

func (h *FeedbackController) ByRating(c *gin.Context) {
	rating, err := strconv.Atoi(c.Param("rating"))
	if err != nil || rating < 1 || rating > 5 {
		utils.Fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	list, err := h.Feedback.ByRating(rating)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load feedback")
		return
	}
	utils.OK(c, "feedback retrieved successfully", list)
}

func (h *FeedbackController) Stats(c *gin.Context) {
	stats, err := h.Feedback.Stats()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load feedback stats")
		return
	}
	utils.OK(c, "feedback stats retrieved successfully", stats)
}

func (h *FeedbackController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid feedback id")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	fb, err := h.Feedback.UpdateStatus(uint(id), input.Status)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "feedback status updated successfully", fb)
}

func (h *FeedbackController) Reply(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid feedback id")
		return
	}

	var input struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	fb, err := h.Feedback.Reply(uint(id), input.Reply)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "reply saved successfully", fb)
}

// ImportLegacy accepts the old dual-rating records and converts them into
// the canonical shape.
func (h *FeedbackController) ImportLegacy(c *gin.Context) {
	var input []models.LegacyFeedback
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	imported, err := h.Feedback.ImportLegacy(input)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.Created(c, "legacy feedback imported successfully", imported)
}
