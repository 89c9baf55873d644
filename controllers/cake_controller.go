package controllers

import (
	"strconv"

	"github.com/NyinakuJoshua/SweetBites/pkg/resp"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"github.com/NyinakuJoshua/SweetBites/services"

	"github.com/gin-gonic/gin"
)

type CakeController struct{ Svc *services.CakeService }

func NewCakeController(s *services.CakeService) *CakeController { return &CakeController{Svc: s} }

// GET /cakes?category=&search=&maxPrice=&sort=
func (h *CakeController) List(c *gin.Context) {
	opts := repository.CakeListOpts{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid maxPrice")
			return
		}
		opts.MaxPrice = p
	}

	cakes, err := h.Svc.List(opts)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cakes)
}

// GET /cakes/:id
func (h *CakeController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cake id")
		return
	}

	cake, err := h.Svc.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cake)
}
