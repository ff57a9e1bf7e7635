package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// UserHandlers handles principal administration (user_management
// resource) and tenant profile lookups.
type UserHandlers struct {
	principals domain.PrincipalRepository
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(principals domain.PrincipalRepository) *UserHandlers {
	return &UserHandlers{principals: principals}
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List returns all principals
func (h *UserHandlers) List(c *gin.Context) {
	principals, err := h.principals.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": principals})
}

// UpdateRole changes another principal's role
func (h *UserHandlers) UpdateRole(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	if err := h.principals.UpdateRole(c.Request.Context(), id, role); err != nil {
		respondError(c, err)
		return
	}

	if scope, ok := middleware.ScopeFromContext(c); ok {
		log.Printf("%s: principal_id=%d new_role=%s by=%d", domain.RoleUpdatedEvent, id, role, scope.PrincipalID)
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Role updated"}})
}

// UpdateStatus activates, deactivates or suspends a principal.
// Deactivation is the soft-delete: principals are never removed.
func (h *UserHandlers) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := domain.ParsePrincipalStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	if err := h.principals.UpdateStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err)
		return
	}

	if scope, ok := middleware.ScopeFromContext(c); ok {
		log.Printf("%s: principal_id=%d new_status=%s by=%d", domain.StatusUpdatedEvent, id, status, scope.PrincipalID)
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Status updated"}})
}

// TenantProfile returns a tenant's principal record. The access
// middleware has already enforced the tenant-resource rule: managers
// see tenants with executed tenancies in their buildings, tenants see
// only themselves.
func (h *UserHandlers) TenantProfile(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	principal, err := h.principals.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":     principal.ID,
			"email":  principal.Email,
			"role":   principal.Role,
			"status": principal.Status,
		},
	})
}
