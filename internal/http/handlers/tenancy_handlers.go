package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// TenancyHandlers handles tenancy CRUD and the onboarding/offboarding
// agreement transitions.
type TenancyHandlers struct {
	tenancies domain.TenancyRepository
}

// NewTenancyHandlers creates new tenancy handlers
func NewTenancyHandlers(tenancies domain.TenancyRepository) *TenancyHandlers {
	return &TenancyHandlers{tenancies: tenancies}
}

type createTenancyRequest struct {
	TenantUserID uint   `json:"tenant_user_id" binding:"required"`
	UnitID       uint   `json:"unit_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	MonthlyRent  int64  `json:"monthly_rent" binding:"required,gt=0"`
}

// List returns tenancies within the caller's resolved scope
func (h *TenancyHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	tenancies, err := h.tenancies.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tenancies})
}

// Get returns a single tenancy
func (h *TenancyHandlers) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenancy id"})
		return
	}

	tenancy, err := h.tenancies.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tenancy})
}

// Create starts the onboarding workflow with a pending agreement
func (h *TenancyHandlers) Create(c *gin.Context) {
	var req createTenancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}
	if !endDate.After(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	tenancy := &domain.Tenancy{
		TenantUserID: req.TenantUserID,
		UnitID:       req.UnitID,
		StartDate:    startDate,
		EndDate:      endDate,
		MonthlyRent:  req.MonthlyRent,
	}
	if err := h.tenancies.Create(c.Request.Context(), tenancy); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": tenancy})
}

// Execute completes onboarding: the agreement moves pending -> executed
// and the tenant's time-windowed access begins
func (h *TenancyHandlers) Execute(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenancy id"})
		return
	}

	if err := h.tenancies.Execute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Agreement executed"}})
}

// Terminate offboards the tenant: executed -> terminated, closing the
// access window at today's date
func (h *TenancyHandlers) Terminate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenancy id"})
		return
	}

	if err := h.tenancies.Terminate(c.Request.Context(), id, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Tenancy terminated"}})
}
