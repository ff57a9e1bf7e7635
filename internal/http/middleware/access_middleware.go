package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// AccessMW composes the role policy and the resource permission
// resolver. Each guarded route declares the resource type and operation
// it represents; the middleware attaches the resolved AccessScope for
// downstream CRUD logic, which must never re-derive access itself.
type AccessMW struct {
	accessSvc domain.AccessService
}

// NewAccessMW creates new access middleware wrapper
func NewAccessMW(accessSvc domain.AccessService) *AccessMW {
	return &AccessMW{accessSvc: accessSvc}
}

// Require guards a route. When the route carries an :id path parameter
// the per-resource predicate runs; list routes skip it and rely on the
// attached building scope instead.
func (mw *AccessMW) Require(rt domain.ResourceType, op domain.Operation) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		var resourceID *uint
		if idStr := c.Param("id"); idStr != "" {
			id64, err := strconv.ParseUint(idStr, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource id"})
				c.Abort()
				return
			}
			id := uint(id64)

			permitted, err := mw.accessSvc.Permitted(c.Request.Context(), claims, rt, id, op)
			if err != nil {
				if err == domain.ErrResourceNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
				}
				c.Abort()
				return
			}
			if !permitted {
				log.Printf("%s: principal_id=%d role=%s resource=%s id=%d op=%s",
					domain.AccessDeniedEvent, claims.PrincipalID, claims.Role, rt, id, op)
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				c.Abort()
				return
			}
			resourceID = &id
		}

		scope, err := mw.accessSvc.AccessibleBuildings(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Scope resolution failed"})
			c.Abort()
			return
		}

		c.Set(ContextScope, &domain.AccessScope{
			PrincipalID:  claims.PrincipalID,
			Email:        claims.Email,
			Role:         claims.Role,
			ResourceType: rt,
			Operation:    op,
			ResourceID:   resourceID,
			Buildings:    scope,
		})

		c.Next()
	})
}
