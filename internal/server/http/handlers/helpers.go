package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/suoapvs/alexcoffee/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentSessionID extracts the cart session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
