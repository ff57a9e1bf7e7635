package app

import (
	"log"
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/internal/config"
	httpx "github.com/siddrai7/communebackend-sub001/internal/http"
	"github.com/siddrai7/communebackend-sub001/internal/http/handlers"
	"github.com/siddrai7/communebackend-sub001/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	h := httpx.Handlers{
		Auth:          handlers.NewAuthHandlers(c.AuthSvc),
		Buildings:     handlers.NewBuildingHandlers(c.BuildingRepo),
		Tenancies:     handlers.NewTenancyHandlers(c.TenancyRepo),
		Complaints:    handlers.NewComplaintHandlers(c.ComplaintRepo),
		Maintenance:   handlers.NewMaintenanceHandlers(c.MaintenanceRepo),
		Payments:      handlers.NewPaymentHandlers(c.PaymentRepo, c.TenancyRepo),
		Announcements: handlers.NewAnnouncementHandlers(c.AnnouncementRepo),
		Dashboard:     handlers.NewDashboardHandlers(c.BuildingRepo, c.TenancyRepo, c.ComplaintRepo, c.MaintenanceRepo, c.PaymentRepo),
		Users:         handlers.NewUserHandlers(c.PrincipalRepo),
		Policies:      handlers.NewPolicyHandlers(c.PolicySvc),
	}

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Enforcer)
	accessMW := middleware.NewAccessMW(c.AccessSvc)

	r := httpx.BuildRouter(h, jwtMW, casbinMW, accessMW)

	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) == 0 {
		seedPolicies(c.Enforcer)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the endpoint gate for a fresh database. The
// gate mirrors the route table by role; per-resource decisions still
// happen in the access middleware behind it.
func seedPolicies(e *casbin.Enforcer) {
	everyone := []string{"role_super_admin", "role_admin", "role_manager", "role_tenant"}
	managersUp := []string{"role_super_admin", "role_admin", "role_manager"}
	admins := []string{"role_super_admin", "role_admin"}
	tenants := []string{"role_tenant"}

	grant := func(roles []string, path, methods string) {
		for _, role := range roles {
			e.AddPolicy(role, path, methods)
		}
	}

	grant(everyone, "/auth/me", "GET")

	grant(everyone, "/buildings", "GET")
	grant(admins, "/buildings", "POST")
	grant(everyone, "/buildings/:id", "GET")
	grant(admins, "/buildings/:id", "PUT")
	grant(admins, "/buildings/:id/manager", "PUT")

	grant(everyone, "/tenancies", "GET")
	grant(managersUp, "/tenancies", "POST")
	grant(everyone, "/tenancies/:id", "GET")
	grant(managersUp, "/tenancies/:id/execute", "POST")
	grant(managersUp, "/tenancies/:id/terminate", "POST")
	grant(everyone, "/tenants/:id", "GET")

	grant(everyone, "/payments", "GET")
	grant(managersUp, "/payments", "POST")
	grant(managersUp, "/payments/:id/paid", "POST")

	// Tenants file complaints and maintenance requests; staff work them
	grant(everyone, "/complaints", "GET")
	grant(tenants, "/complaints", "POST")
	grant(everyone, "/complaints/:id", "GET")
	grant(managersUp, "/complaints/:id/status", "PUT")
	grant(everyone, "/maintenance", "GET")
	grant(tenants, "/maintenance", "POST")
	grant(everyone, "/maintenance/:id", "GET")
	grant(managersUp, "/maintenance/:id/status", "PUT")

	grant(everyone, "/announcements", "GET")
	grant(managersUp, "/announcements", "POST")
	grant(everyone, "/dashboard", "GET")

	grant([]string{"role_super_admin"}, "/admin/*", "(GET|POST|PUT|DELETE)")

	_ = e.SavePolicy()
	log.Println("casbin: seeded default policies")
}
