package controllers

import (
	"strconv"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/pkg/resp"
	"github.com/NyinakuJoshua/SweetBites/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController { return &AdminController{Svc: s} }

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	d, err := h.Svc.Dashboard()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /admin/orders
func (h *AdminController) Orders(c *gin.Context) {
	orders, err := h.Svc.ListOrders()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateOrderStatus(uint(orderID), entity.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}
