package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// AccessRule binds a path prefix to the roles allowed past it. A rule
// with an empty role set admits any request.
type AccessRule struct {
	Prefix string
	Roles  []model.UserRole
}

// DefaultAccessPolicy is the shop's role matrix. Rules are evaluated
// top to bottom, first prefix match wins, and the trailing catch-all
// admits everything the earlier rules did not claim.
func DefaultAccessPolicy() []AccessRule {
	return []AccessRule{
		{Prefix: "/api/admin", Roles: []model.UserRole{model.RoleAdmin}},
		{Prefix: "/api/manager", Roles: []model.UserRole{model.RoleAdmin, model.RoleManager}},
		{Prefix: "/"},
	}
}

// Access enforces an ordered prefix-to-roles rule table. Requests that
// match no rule pass through. When the matched rule names roles, the
// request must carry a token whose role is in the set: no token is 401,
// a wrong role is 403. On success the claims land in the gin context.
func Access(parser TokenParser, rules []AccessRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, matched := matchRule(rules, c.Request.URL.Path)
		if !matched || len(rule.Roles) == 0 {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, role := range rule.Roles {
			if string(role) == claims.Role {
				c.Set(UserIDContextKey, claims.UserID)
				c.Set(UserRoleContextKey, claims.Role)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

func matchRule(rules []AccessRule, path string) (AccessRule, bool) {
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return AccessRule{}, false
}
