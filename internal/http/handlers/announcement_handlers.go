package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// AnnouncementHandlers handles building announcements
type AnnouncementHandlers struct {
	announcements domain.AnnouncementRepository
}

// NewAnnouncementHandlers creates new announcement handlers
func NewAnnouncementHandlers(announcements domain.AnnouncementRepository) *AnnouncementHandlers {
	return &AnnouncementHandlers{announcements: announcements}
}

type createAnnouncementRequest struct {
	BuildingID uint   `json:"building_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// List returns announcements within the caller's resolved scope
func (h *AnnouncementHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	announcements, err := h.announcements.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": announcements})
}

// Create posts an announcement to a building in the caller's scope
func (h *AnnouncementHandlers) Create(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !scope.Buildings.Contains(req.BuildingID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Building outside accessible buildings"})
		return
	}

	announcement := &domain.Announcement{
		BuildingID: req.BuildingID,
		Title:      req.Title,
		Body:       req.Body,
		PostedBy:   scope.PrincipalID,
	}
	if err := h.announcements.Create(c.Request.Context(), announcement); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": announcement})
}
