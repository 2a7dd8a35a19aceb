package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFoundTemplate is the page rendered for unknown ids and routes
const NotFoundTemplate = "not_found.html"

// Response is the JSON envelope used by the operational endpoints
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful JSON response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Redirect sends a 302 to location, the way browsers expect after a form post
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound renders the 404 page
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, NotFoundTemplate, gin.H{})
}

// Text sends a plain-text body
func Text(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// InternalError sends a plain-text 500 response
func InternalError(c *gin.Context) {
	Text(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
