package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// MaintenanceHandlers handles maintenance request CRUD
type MaintenanceHandlers struct {
	maintenance domain.MaintenanceRepository
}

// NewMaintenanceHandlers creates new maintenance handlers
func NewMaintenanceHandlers(maintenance domain.MaintenanceRepository) *MaintenanceHandlers {
	return &MaintenanceHandlers{maintenance: maintenance}
}

type createMaintenanceRequest struct {
	BuildingID  uint   `json:"building_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

// List returns maintenance requests within the caller's resolved scope
func (h *MaintenanceHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	requests, err := h.maintenance.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// Get returns a single maintenance request
func (h *MaintenanceHandlers) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance request id"})
		return
	}

	request, err := h.maintenance.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": request})
}

// Create files a maintenance request for a building in the caller's scope
func (h *MaintenanceHandlers) Create(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	var req createMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !scope.Buildings.Contains(req.BuildingID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No active tenancy in this building"})
		return
	}

	request := &domain.MaintenanceRequest{
		TenantUserID: scope.PrincipalID,
		BuildingID:   req.BuildingID,
		Category:     req.Category,
		Description:  req.Description,
	}
	if err := h.maintenance.Create(c.Request.Context(), request); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": request})
}

// UpdateStatus advances a maintenance request through its lifecycle
func (h *MaintenanceHandlers) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance request id"})
		return
	}

	var req updateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.maintenance.UpdateStatus(c.Request.Context(), id, domain.MaintenanceStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Maintenance status updated"}})
}
