package routes

import (
	"styledecor/cache"
	"styledecor/config"
	"styledecor/constants"
	authController "styledecor/controllers/auth"
	bookingController "styledecor/controllers/booking"
	paymentController "styledecor/controllers/payment"
	serviceController "styledecor/controllers/service"
	userController "styledecor/controllers/user"
	"styledecor/httpServices/checkout"
	"styledecor/logger"
	"styledecor/middleware"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resolveRole maps an authenticated email to its acting role by loading the
// user record. A missing record denies access.
func resolveRole(email string) (string, error) {
	account, err := utils.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	return account.Role.String(), nil
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.App, c *cache.Cache) {
	checkoutClient := checkout.NewClient(cfg.PaymentBaseURL, cfg.PaymentAPIKey)
	asyncLogger := logger.NewAsyncLogger(db)

	authCtrl := authController.NewAuthController(db, cfg, asyncLogger)
	userCtrl := userController.NewUserController(db, asyncLogger)
	serviceCtrl := serviceController.NewServiceController(db, c, asyncLogger)
	bookingCtrl := bookingController.NewBookingController(db, asyncLogger)
	paymentCtrl := paymentController.NewPaymentController(db, cfg, checkoutClient, asyncLogger)

	guard := middleware.NewGuard(cfg.JWTSecret, resolveRole)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "styledecor", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register", authCtrl.Register)
	api.Post("/login", authCtrl.Login)
	api.Get("/services", serviceCtrl.Index)
	api.Get("/services/:id", serviceCtrl.Show)

	/*=============================================================================
	| Authenticated Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(guard.RequireAuthentication())
	authGroup.Post("/logout", authCtrl.LogOut)
	authGroup.Get("/profile", authCtrl.Profile)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookings := api.Group("/bookings")

	bookings.Post("/", guard.RequireAuthentication(), bookingCtrl.Store)
	bookings.Get("/", guard.RequireAuthentication(), bookingCtrl.Index)
	bookings.Get("/export", guard.RequireRoles(constants.RoleAdmin), bookingCtrl.Export)
	bookings.Get("/today", guard.RequireRoles(constants.RoleDecorator), bookingCtrl.Today)
	bookings.Get("/:id", guard.RequireAuthentication(), bookingCtrl.Show)
	bookings.Patch("/:id", guard.RequireAuthentication(), bookingCtrl.Update)
	bookings.Delete("/:id", guard.RequireAuthentication(), bookingCtrl.Delete)

	bookings.Patch("/:id/role", guard.RequireRoles(constants.RoleAdmin), bookingCtrl.AssignDecorator)
	bookings.Patch("/:id/status", guard.RequireRoles(constants.StaffRoles...), bookingCtrl.UpdateDeliveryStatus)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	api.Post("/payment-checkout-session", guard.RequireAuthentication(), paymentCtrl.CreateCheckoutSession)
	api.Patch("/payment-success", guard.RequireAuthentication(), paymentCtrl.PaymentSuccess)
	api.Get("/payments", guard.RequireAuthentication(), paymentCtrl.Index)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	users := api.Group("/users").Use(guard.RequireRoles(constants.RoleAdmin))
	users.Get("/", userCtrl.Index)
	users.Patch("/:id", userCtrl.Update)
	users.Patch("/:id/status", userCtrl.UpdateStatus)
	users.Delete("/:id", userCtrl.Delete)

	api.Post("/services", guard.RequireRoles(constants.RoleAdmin), serviceCtrl.Store)
	api.Patch("/services/:id", guard.RequireRoles(constants.RoleAdmin), serviceCtrl.Update)
	api.Delete("/services/:id", guard.RequireRoles(constants.RoleAdmin), serviceCtrl.Delete)
}
