package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examportal/backend/internal/model"
)

// ErrorResponder is the single place error responses are written. Handlers
// and middleware record errors on the context and abort; after the chain
// unwinds this serializes the last one as {"message": ...} with the status
// the error carries, defaulting to 500.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if c.Writer.Written() {
			// A response already started; leave the error to gin's own
			// fault handling instead of double-writing.
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "An unknown error occurred!"

		var httpErr *model.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.Code != 0 {
				code = httpErr.Code
			}
			if httpErr.Message != "" {
				message = httpErr.Message
			}
		}

		c.JSON(code, model.ErrorResponse{Message: message})
	}
}

// NoRoute mirrors the catch-all the API has always had for unknown paths.
func NoRoute(c *gin.Context) {
	abortWithError(c, model.NewHTTPError(http.StatusNotFound, "Could not find this route."))
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
