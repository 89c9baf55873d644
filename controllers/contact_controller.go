package controllers

import (
	"net/http"

	"github.com/NyinakuJoshua/SweetBites/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct{ Svc *services.ContactService }

func NewContactController(s *services.ContactService) *ContactController {
	return &ContactController{Svc: s}
}

// POST /contact
//
// Response shape matches what the contact form expects:
// {success, message} or {success:false, error}.
func (h *ContactController) Submit(c *gin.Context) {
	var req services.ContactIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Svc.Submit(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}
