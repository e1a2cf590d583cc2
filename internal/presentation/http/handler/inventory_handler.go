package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles stock level and adjustment HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// AdjustStockRequest represents the stock adjustment request body
type AdjustStockRequest struct {
	ItemID string  `json:"item_id" binding:"required"`
	Delta  float64 `json:"delta" binding:"required"`
	Reason int     `json:"reason"`
	Note   *string `json:"note"`
}

// ListStock handles listing items with current stock levels
func (h *InventoryHandler) ListStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.inventoryService.ListStock(c.Request.Context(), *userID, getPagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock retrieved successfully", result)
}

// AdjustStock handles applying a stock adjustment
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	adjustment, err := h.inventoryService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		UserID: *userID,
		ItemID: itemID,
		Delta:  req.Delta,
		Reason: enum.AdjustmentReason(req.Reason),
		Note:   req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted successfully", adjustment)
}

// ListAdjustments handles listing stock adjustments
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := parseUUIDQuery(c, "item_id")
	if err != nil {
		response.BadRequest(c, "Invalid item_id filter")
		return
	}

	result, err := h.inventoryService.ListAdjustments(c.Request.Context(), *userID, getPagination(c), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock adjustments retrieved successfully", result)
}
