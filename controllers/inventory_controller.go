package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type InventoryController struct {
	Inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{Inventory: inventory}
}

func (h *InventoryController) List(c *gin.Context) {
	items, err := h.Inventory.List(c.Query("category"), c.Query("query"))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load inventory")
		return
	}
	utils.OK(c, "inventory retrieved successfully", items)
}

func (h *InventoryController) Add(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.Inventory.Add(item)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "inventory item added successfully", view)
}

func (h *InventoryController) Update(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = c.Param("id")

	view, err := h.Inventory.Update(item)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "inventory item updated successfully", view)
}

func (h *InventoryController) Delete(c *gin.Context) {
	if err := h.Inventory.Delete(c.Param("id")); err != nil {
		utils.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	utils.OK(c, "inventory item removed", nil)
}

func (h *InventoryController) LowStock(c *gin.Context) {
	items, err := h.Inventory.LowStock()
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load inventory")
		return
	}
	utils.OK(c, "low stock items retrieved successfully", items)
}
