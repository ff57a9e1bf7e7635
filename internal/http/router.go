package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/http/handlers"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

// Handlers bundles the handler set the router wires up.
type Handlers struct {
	Auth          *handlers.AuthHandlers
	Buildings     *handlers.BuildingHandlers
	Tenancies     *handlers.TenancyHandlers
	Complaints    *handlers.ComplaintHandlers
	Maintenance   *handlers.MaintenanceHandlers
	Payments      *handlers.PaymentHandlers
	Announcements *handlers.AnnouncementHandlers
	Dashboard     *handlers.DashboardHandlers
	Users         *handlers.UserHandlers
	Policies      *handlers.PolicyHandlers
}

// BuildRouter assembles the HTTP surface. Protected routes run the
// bearer middleware, the casbin endpoint gate, and a per-route access
// declaration naming the resource type and operation.
func BuildRouter(h Handlers, authMW *middleware.AuthMW, casbinMW middleware.CasbinMiddleware, accessMW *middleware.AccessMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/otp/request", h.Auth.RequestOTP)
	auth.POST("/otp/resend", h.Auth.ResendOTP)
	auth.POST("/otp/verify", h.Auth.VerifyOTP)
	auth.POST("/refresh", h.Auth.Refresh)

	v := r.Group("/")
	v.Use(authMW.WithBearer(), casbinMW.Enforce())

	v.GET("/auth/me", h.Auth.Me)

	v.GET("/buildings", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Buildings.List)
	v.POST("/buildings", accessMW.Require(domain.ResourceBuilding, domain.OpCreate), h.Buildings.Create)
	v.GET("/buildings/:id", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Buildings.Get)
	v.PUT("/buildings/:id", accessMW.Require(domain.ResourceBuilding, domain.OpUpdate), h.Buildings.Update)
	v.PUT("/buildings/:id/manager", accessMW.Require(domain.ResourceBuilding, domain.OpUpdate), h.Buildings.AssignManager)

	v.GET("/tenancies", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Tenancies.List)
	v.POST("/tenancies", accessMW.Require(domain.ResourceBuilding, domain.OpCreate), h.Tenancies.Create)
	v.GET("/tenancies/:id", accessMW.Require(domain.ResourceTenancy, domain.OpView), h.Tenancies.Get)
	v.POST("/tenancies/:id/execute", accessMW.Require(domain.ResourceTenancy, domain.OpUpdate), h.Tenancies.Execute)
	v.POST("/tenancies/:id/terminate", accessMW.Require(domain.ResourceTenancy, domain.OpUpdate), h.Tenancies.Terminate)

	v.GET("/tenants/:id", accessMW.Require(domain.ResourceTenant, domain.OpView), h.Users.TenantProfile)

	v.GET("/payments", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Payments.List)
	v.POST("/payments", accessMW.Require(domain.ResourceBuilding, domain.OpCreate), h.Payments.Create)
	v.POST("/payments/:id/paid", accessMW.Require(domain.ResourcePayment, domain.OpUpdate), h.Payments.MarkPaid)

	v.GET("/complaints", accessMW.Require(domain.ResourceComplaint, domain.OpView), h.Complaints.List)
	v.POST("/complaints", accessMW.Require(domain.ResourceComplaint, domain.OpCreate), h.Complaints.Create)
	v.GET("/complaints/:id", accessMW.Require(domain.ResourceComplaint, domain.OpView), h.Complaints.Get)
	v.PUT("/complaints/:id/status", accessMW.Require(domain.ResourceComplaint, domain.OpUpdate), h.Complaints.UpdateStatus)

	v.GET("/maintenance", accessMW.Require(domain.ResourceMaintenance, domain.OpView), h.Maintenance.List)
	v.POST("/maintenance", accessMW.Require(domain.ResourceMaintenance, domain.OpCreate), h.Maintenance.Create)
	v.GET("/maintenance/:id", accessMW.Require(domain.ResourceMaintenance, domain.OpView), h.Maintenance.Get)
	v.PUT("/maintenance/:id/status", accessMW.Require(domain.ResourceMaintenance, domain.OpUpdate), h.Maintenance.UpdateStatus)

	v.GET("/announcements", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Announcements.List)
	v.POST("/announcements", accessMW.Require(domain.ResourceBuilding, domain.OpCreate), h.Announcements.Create)

	v.GET("/dashboard", accessMW.Require(domain.ResourceBuilding, domain.OpView), h.Dashboard.Stats)

	adm := r.Group("/admin")
	adm.Use(authMW.WithBearer(), casbinMW.Enforce())
	adm.GET("/users", accessMW.Require(domain.ResourceUserManagement, domain.OpView), h.Users.List)
	adm.PUT("/users/:id/role", accessMW.Require(domain.ResourceUserManagement, domain.OpUpdate), h.Users.UpdateRole)
	adm.PUT("/users/:id/status", accessMW.Require(domain.ResourceUserManagement, domain.OpUpdate), h.Users.UpdateStatus)
	adm.GET("/policies", h.Policies.List)
	adm.POST("/policies", h.Policies.Add)
	adm.DELETE("/policies", h.Policies.Remove)

	return r
}
