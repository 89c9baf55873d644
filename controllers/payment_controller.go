package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/pkg/payment"
	"github.com/NyinakuJoshua/SweetBites/pkg/resp"
	"github.com/NyinakuJoshua/SweetBites/services"
	"github.com/NyinakuJoshua/SweetBites/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// PaymentController is the webhook collaborator: it turns completed payment
// sessions into order rows.
type PaymentController struct {
	Svc           *services.OrderService
	WebhookSecret string
	Logger        *zap.Logger
}

func NewPaymentController(s *services.OrderService, webhookSecret string, logger *zap.Logger) *PaymentController {
	return &PaymentController{Svc: s, WebhookSecret: webhookSecret, Logger: logger}
}

// POST /payments/webhook
func (h *PaymentController) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, "cannot read payload")
		return
	}

	event, err := payment.VerifyEvent(payload, c.GetHeader("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		h.Logger.Warn("webhook signature rejected", zap.Error(err))
		resp.BadRequest(c, "invalid signature")
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		resp.BadRequest(c, "malformed session payload")
		return
	}

	in, err := confirmInputFromSession(&sess)
	if err != nil {
		h.Logger.Error("webhook metadata unusable",
			zap.String("session", sess.ID), zap.Error(err))
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.ConfirmPayment(in)
	if err != nil {
		// Non-2xx makes the provider retry the delivery later.
		h.Logger.Error("order confirmation failed",
			zap.String("session", sess.ID), zap.Error(err))
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "orderNumber": order.OrderNumber})
}

// GET /payment-success/confirm?session_id=
func (h *PaymentController) Confirm(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		resp.BadRequest(c, "session_id is required")
		return
	}

	order, err := h.Svc.GetByPaymentRef(uid, sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

func confirmInputFromSession(sess *stripe.CheckoutSession) (*services.ConfirmPaymentIn, error) {
	in := &services.ConfirmPaymentIn{SessionID: sess.ID}

	uid, err := strconv.ParseUint(sess.Metadata["user_id"], 10, 64)
	if err != nil {
		return nil, err
	}
	in.UserID = uint(uid)

	if raw := sess.Metadata["delivery_address"]; raw != "" {
		var addr entity.DeliveryAddress
		if err := json.Unmarshal([]byte(raw), &addr); err != nil {
			return nil, err
		}
		in.DeliveryAddress = addr
	}
	if raw := sess.Metadata["delivery_date"]; raw != "" {
		if d, err := time.Parse(time.RFC3339, raw); err == nil {
			in.DeliveryDate = &d
		}
	}
	in.SpecialInstructions = sess.Metadata["special_instructions"]

	return in, nil
}
