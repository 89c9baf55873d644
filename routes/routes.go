package routes

import (
	"github.com/NyinakuJoshua/SweetBites/configs"
	"github.com/NyinakuJoshua/SweetBites/controllers"
	"github.com/NyinakuJoshua/SweetBites/middlewares"
	"github.com/NyinakuJoshua/SweetBites/pkg/mail"
	"github.com/NyinakuJoshua/SweetBites/pkg/payment"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"github.com/NyinakuJoshua/SweetBites/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cakeRepo := repository.NewCakeRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// External collaborators
	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.SiteURL, logger)
	mailer := mail.NewResendMailer(cfg.ResendAPIKey, logger)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cakeSvc := services.NewCakeService(cakeRepo)
	cartSvc := services.NewCartService(db, cartRepo, cakeRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, provider, logger)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, logger)
	adminSvc := services.NewAdminService(db, orderRepo, cakeRepo)
	contactSvc := services.NewContactService(mailer, cfg.SenderEmail, cfg.BusinessEmail, logger)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cakeCtrl := controllers.NewCakeController(cakeSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	paymentCtrl := controllers.NewPaymentController(orderSvc, cfg.StripeWebhookSecret, logger)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	contactCtrl := controllers.NewContactController(contactSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/cakes", cakeCtrl.List)
	r.GET("/cakes/:id", cakeCtrl.Detail)

	// Contact form (public)
	r.POST("/contact", contactCtrl.Submit)

	// Payment provider callback (authenticated by signature, not JWT)
	r.POST("/payments/webhook", paymentCtrl.Webhook)

	// Shopper (signed in)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.Update)
		u.DELETE("/cart/items/:id", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", checkoutCtrl.Checkout)
		u.GET("/payment-success/confirm", paymentCtrl.Confirm)

		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.Orders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateStatus)
	}
}
