package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// PaymentHandlers handles payment recording and listing
type PaymentHandlers struct {
	payments  domain.PaymentRepository
	tenancies domain.TenancyRepository
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(payments domain.PaymentRepository, tenancies domain.TenancyRepository) *PaymentHandlers {
	return &PaymentHandlers{payments: payments, tenancies: tenancies}
}

type createPaymentRequest struct {
	TenancyID uint   `json:"tenancy_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Method    string `json:"method" binding:"required,oneof=cash transfer card"`
	DueDate   string `json:"due_date" binding:"required"`
	Paid      bool   `json:"paid"`
}

// List returns payments within the caller's resolved scope
func (h *PaymentHandlers) List(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	payments, err := h.payments.List(c.Request.Context(), scope.Buildings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payments})
}

// Create records a payment against a tenancy. The tenancy's building
// must fall inside the caller's resolved scope.
func (h *PaymentHandlers) Create(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access scope not resolved"})
		return
	}

	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date, expected YYYY-MM-DD"})
		return
	}

	tenancy, err := h.tenancies.FindByID(c.Request.Context(), req.TenancyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !scope.Buildings.Contains(tenancy.BuildingID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Tenancy outside accessible buildings"})
		return
	}

	payment := &domain.Payment{
		Reference: uuid.NewString(),
		TenancyID: req.TenancyID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    domain.PaymentPending,
		DueDate:   dueDate,
	}
	if req.Paid {
		now := time.Now()
		payment.Status = domain.PaymentPaid
		payment.PaidAt = &now
	}

	if err := h.payments.Create(c.Request.Context(), payment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": payment})
}

// MarkPaid settles a pending payment
func (h *PaymentHandlers) MarkPaid(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	if err := h.payments.MarkPaid(c.Request.Context(), id, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Payment marked paid"}})
}
