package v1

import "github.com/gin-gonic/gin"

type errorResponse struct {
	Error string `json:"error"`
} // @name ErrorResponse

type messageResponse struct {
	Message string `json:"message"`
} // @name MessageResponse

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}
