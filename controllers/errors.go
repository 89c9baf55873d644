package controllers

import (
	"errors"

	"github.com/NyinakuJoshua/SweetBites/pkg/resp"
	"github.com/NyinakuJoshua/SweetBites/services"

	"github.com/gin-gonic/gin"
)

// writeError maps the service error taxonomy onto HTTP. Anything unmapped
// is a backing-store failure and comes back as a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidOption):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPaymentSession):
		resp.BadGateway(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
