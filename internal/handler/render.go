package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/pkg/response"
)

// render executes a page template with the current user and pending
// flash notices added to data
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = middleware.GetUser(c)
	data["Flashes"] = middleware.Flashes(c)
	c.HTML(status, name, data)
}

// parseID reads a numeric path parameter. Anything else is a missing page.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
