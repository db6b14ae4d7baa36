package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type DistributionController struct {
	Distributions *services.DistributionService
}

func NewDistributionController(d *services.DistributionService) *DistributionController {
	return &DistributionController{Distributions: d}
}

func (h *DistributionController) Log(c *gin.Context) {
	var input services.DistributionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.Distributions.Log(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "distribution logged successfully", entry)
}

func (h *DistributionController) List(c *gin.Context) {
	var date time.Time
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	entries, err := h.Distributions.List(date)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load distribution log")
		return
	}
	utils.OK(c, "distribution log retrieved successfully", entries)
}
