package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// optionalQuery returns a pointer to the query value, or nil when it is empty
func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

// queryLimit parses ?limit=, ignoring anything that is not a positive number
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
