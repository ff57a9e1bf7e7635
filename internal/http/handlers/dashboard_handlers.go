package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// DashboardHandlers aggregates counts over the caller's accessible
// buildings. Every query is scope-filtered; an empty restricted scope
// short-circuits inside the repositories.
type DashboardHandlers struct {
	buildings   domain.BuildingRepository
	tenancies   domain.TenancyRepository
	complaints  domain.ComplaintRepository
	maintenance domain.MaintenanceRepository
	payments    domain.PaymentRepository
}

// NewDashboardHandlers creates new dashboard handlers
func NewDashboardHandlers(
	buildings domain.BuildingRepository,
	tenancies domain.TenancyRepository,
	complaints domain.ComplaintRepository,
	maintenance domain.MaintenanceRepository,
	payments domain.PaymentRepository,
) *DashboardHandlers {
	return &DashboardHandlers{
		buildings:   buildings,
		tenancies:   tenancies,
		complaints:  complaints,
		maintenance: maintenance,
		payments:    payments,
	}
}

// Stats returns the back-office dashboard aggregates
func (h *DashboardHandlers) Stats(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	ctx := c.Request.Context()
	var stats domain.DashboardStats
	var err error

	if stats.Buildings, err = h.buildings.Count(ctx, scope.Buildings); err != nil {
		respondError(c, err)
		return
	}
	if stats.ActiveTenancies, err = h.tenancies.CountActive(ctx, scope.Buildings, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	if stats.OpenComplaints, err = h.complaints.CountOpen(ctx, scope.Buildings); err != nil {
		respondError(c, err)
		return
	}
	if stats.OpenMaintenance, err = h.maintenance.CountOpen(ctx, scope.Buildings); err != nil {
		respondError(c, err)
		return
	}
	if stats.PaymentsCollected, err = h.payments.TotalByStatus(ctx, scope.Buildings, domain.PaymentPaid); err != nil {
		respondError(c, err)
		return
	}
	if stats.PaymentsOutstanding, err = h.payments.TotalByStatus(ctx, scope.Buildings, domain.PaymentPending); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
