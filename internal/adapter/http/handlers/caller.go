package handlers

import (
	"net/http"
	"strings"

	"repairflow/internal/domain/entities"
	"repairflow/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	callerKey = "caller"
)

var (
	errMissingCaller = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-User-ID and X-User-Role headers are required", http.StatusUnauthorized)
	errUnknownRole   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-User-Role must be CUSTOMER or TECHNICIAN", http.StatusUnauthorized)
	errWrongRole     = pkg.NewDomainErrorSimple("ILLEGAL_ACCESS", "Operation not allowed for this role", http.StatusForbidden)
)

// RequireCaller resolves the caller identity set by the gateway in front of the
// service and stores it on the context.
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		rawRole := strings.TrimSpace(c.GetHeader(HeaderUserRole))
		if id == "" || rawRole == "" {
			c.AbortWithStatusJSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
			return
		}
		role := entities.Role(strings.ToUpper(rawRole))
		if !role.IsValid() {
			c.AbortWithStatusJSON(errUnknownRole.HTTPStatus, errUnknownRole.ToHTTPError())
			return
		}
		c.Set(callerKey, entities.Caller{Role: role, ID: id})
		c.Next()
	}
}

func callerFrom(c *gin.Context) (entities.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return entities.Caller{}, false
	}
	caller, ok := v.(entities.Caller)
	return caller, ok
}

// callerWithRole writes the error response itself when the caller is missing or
// has a different role.
func callerWithRole(c *gin.Context, role entities.Role) (entities.Caller, bool) {
	caller, ok := callerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return entities.Caller{}, false
	}
	if caller.Role != role {
		c.JSON(errWrongRole.HTTPStatus, errWrongRole.ToHTTPError())
		return entities.Caller{}, false
	}
	return caller, true
}
