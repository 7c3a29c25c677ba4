package middleware

import (
	"log"
	"net/http"
	"strings"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated user id set by the auth proxy in
// front of this service. Credentials never reach us; the proxy owns login.
const UserIDHeader = "X-User-ID"

const sessionKey = "session"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or unknown user identity", http.StatusUnauthorized)
	errInactiveUser    = pkg.NewDomainErrorSimple("USER_INACTIVE", "User account is deactivated", http.StatusForbidden)
	errAdminOnly       = pkg.NewDomainErrorSimple("ADMIN_ONLY", "Administrator access required", http.StatusForbidden)
)

// Session resolves the caller's profile and threads it through the request
// context. Every route behind it can assume SessionFrom succeeds.
func Session(profiles interfaces.IProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		profile, err := profiles.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[auth][middleware] profile lookup failed user_id=%s err=%v", userID, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if profile.ID == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if !profile.Active {
			c.AbortWithStatusJSON(errInactiveUser.HTTPStatus, errInactiveUser.ToHTTPError())
			return
		}

		c.Set(sessionKey, entities.Session{
			UserID:   profile.ID,
			FullName: profile.FullName,
			IsAdmin:  profile.Role == entities.RoleAdmin,
		})
		c.Next()
	}
}

// RequireAdmin gates the finance endpoints. Must run after Session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsAdmin {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SessionFrom returns the resolved session, or the zero value when the route
// is not behind the Session middleware.
func SessionFrom(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}
