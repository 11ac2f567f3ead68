// Package middleware holds gin middlewares shared by the v1 routes.
package middleware

import (
	"net/http"
	"strings"

	"supplyops/internal/domain/entities"
	"supplyops/pkg"

	"github.com/gin-gonic/gin"
)

// Identity is established upstream (gateway or BFF); these headers carry it.
const (
	HeaderStaffID   = "X-Staff-Id"
	HeaderStaffRole = "X-Staff-Role"
)

const actorKey = "supplyops.actor"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid staff identity", http.StatusUnauthorized)

// RequireActor rejects requests without a staff id or with an unknown role.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := strings.TrimSpace(c.GetHeader(HeaderStaffID))
		role, ok := entities.ParseRole(c.GetHeader(HeaderStaffRole))
		if staffID == "" || !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actorKey, entities.Actor{StaffID: staffID, Role: role})
		c.Next()
	}
}

// ActorFrom returns the actor set by RequireActor. Without it the zero
// actor is returned, which every permission check denies.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}
