package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody is the response of every failed API call.
type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders the last error a handler attached to the context as
// 400 {"message": ...}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		c.JSON(http.StatusBadRequest, errorBody{Message: c.Errors.Last().Err.Error()})
	}
}

// fail attaches err for ErrorHandler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
