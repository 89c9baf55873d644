package controllers

import (
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/pkg/resp"
	"github.com/NyinakuJoshua/SweetBites/services"
	"github.com/NyinakuJoshua/SweetBites/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req struct {
		DeliveryAddress struct {
			Street     string `json:"street" binding:"required"`
			City       string `json:"city" binding:"required"`
			State      string `json:"state"`
			PostalCode string `json:"postal_code"`
			Country    string `json:"country"`
		} `json:"deliveryAddress" binding:"required"`
		DeliveryDate        string `json:"deliveryDate"`
		SpecialInstructions string `json:"specialInstructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := &services.CheckoutIn{
		DeliveryAddress: entity.DeliveryAddress{
			Street:     req.DeliveryAddress.Street,
			City:       req.DeliveryAddress.City,
			State:      req.DeliveryAddress.State,
			PostalCode: req.DeliveryAddress.PostalCode,
			Country:    req.DeliveryAddress.Country,
		},
		SpecialInstructions: req.SpecialInstructions,
	}
	if req.DeliveryDate != "" {
		d, err := time.Parse(time.RFC3339, req.DeliveryDate)
		if err != nil {
			resp.BadRequest(c, "invalid deliveryDate, expected RFC3339")
			return
		}
		in.DeliveryDate = &d
	}

	out, err := h.Svc.Checkout(uid, in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}
