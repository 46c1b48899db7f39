package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the error body every handler failure renders:
// {"error":{"message":...}}, optionally with a detail payload.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records the cause on the gin context for the logging
// middleware and writes the public error body. msg is what the client sees;
// err is what the logs see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
