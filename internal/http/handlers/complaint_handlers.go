package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// ComplaintHandlers handles complaint CRUD
type ComplaintHandlers struct {
	complaints domain.ComplaintRepository
}

// NewComplaintHandlers creates new complaint handlers
func NewComplaintHandlers(complaints domain.ComplaintRepository) *ComplaintHandlers {
	return &ComplaintHandlers{complaints: complaints}
}

type createComplaintRequest struct {
	BuildingID  uint   `json:"building_id" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress resolved rejected"`
}

// List returns complaints within the caller's resolved scope
func (h *ComplaintHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	complaints, err := h.complaints.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": complaints})
}

// Get returns a single complaint
func (h *ComplaintHandlers) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint id"})
		return
	}

	complaint, err := h.complaints.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": complaint})
}

// Create files a complaint. The building must fall inside the caller's
// resolved scope, which for a tenant means an active tenancy there.
func (h *ComplaintHandlers) Create(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !scope.Buildings.Contains(req.BuildingID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No active tenancy in this building"})
		return
	}

	complaint := &domain.Complaint{
		TenantUserID: scope.PrincipalID,
		BuildingID:   req.BuildingID,
		Subject:      req.Subject,
		Description:  req.Description,
	}
	if err := h.complaints.Create(c.Request.Context(), complaint); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": complaint})
}

// UpdateStatus advances a complaint through its lifecycle
func (h *ComplaintHandlers) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint id"})
		return
	}

	var req updateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.complaints.UpdateStatus(c.Request.Context(), id, domain.ComplaintStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Complaint status updated"}})
}
