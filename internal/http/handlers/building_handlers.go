package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// BuildingHandlers handles building CRUD. All access decisions are
// taken from the scope the access middleware attached.
type BuildingHandlers struct {
	buildings domain.BuildingRepository
}

// NewBuildingHandlers creates new building handlers
func NewBuildingHandlers(buildings domain.BuildingRepository) *BuildingHandlers {
	return &BuildingHandlers{buildings: buildings}
}

type createBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type updateBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=active inactive"`
}

type assignManagerRequest struct {
	ManagerID *uint `json:"manager_id"`
}

// List returns buildings within the caller's resolved scope
func (h *BuildingHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	buildings, err := h.buildings.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": buildings})
}

// Get returns a single building; the access middleware has already
// resolved permission for the id
func (h *BuildingHandlers) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	building, err := h.buildings.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": building})
}

// Create registers a new building
func (h *BuildingHandlers) Create(c *gin.Context) {
	var req createBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building := &domain.Building{
		Name:    req.Name,
		Address: req.Address,
		Status:  domain.BuildingActive,
	}
	if err := h.buildings.Create(c.Request.Context(), building); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": building})
}

// Update modifies a building's details
func (h *BuildingHandlers) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	var req updateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building := &domain.Building{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Status:  domain.BuildingStatus(req.Status),
	}
	if err := h.buildings.Update(c.Request.Context(), building); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Building updated"}})
}

// AssignManager sets or clears the building's manager
func (h *BuildingHandlers) AssignManager(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	var req assignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.buildings.AssignManager(c.Request.Context(), id, req.ManagerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Manager assignment updated"}})
}

func pathID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
