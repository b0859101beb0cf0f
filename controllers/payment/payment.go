package payment

import (
	"errors"
	"time"

	"styledecor/config"
	"styledecor/constants"
	"styledecor/httpServices/checkout"
	"styledecor/logger"
	"styledecor/middleware"
	bookingModel "styledecor/models/booking"
	paymentModel "styledecor/models/payment"
	"styledecor/types"
	paymentTypes "styledecor/types/payment"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController drives the checkout flow: it opens a hosted gateway
// session for an unpaid booking, then confirms the session when the customer
// is redirected back and flips the booking to paid.
type PaymentController struct {
	DB       *gorm.DB
	Cfg      config.App
	Checkout *checkout.Client
	Logger   *logger.AsyncLogger
}

func NewPaymentController(db *gorm.DB, cfg config.App, client *checkout.Client, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{DB: db, Cfg: cfg, Checkout: client, Logger: asyncLogger}
}

// CreateCheckoutSession opens a hosted checkout page for an unpaid booking
// owned by the caller and returns the redirect URL. The gateway session id is
// stored encrypted on the booking until the payment is confirmed.
func (pc *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	var req paymentTypes.CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var booking bookingModel.Booking
	if err := pc.DB.First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking for checkout", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if booking.UserEmail != middleware.CurrentEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "You can only pay for your own bookings",
			Status:  fiber.StatusForbidden,
		})
	}

	if booking.PaymentStatus == bookingModel.PaymentStatusPaid {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Booking is already paid",
			Status:  fiber.StatusConflict,
		})
	}

	session, err := pc.Checkout.CreateSession(checkout.SessionRequest{
		Amount:        booking.Price,
		Currency:      "usd",
		Description:   booking.ServiceName,
		CustomerEmail: booking.UserEmail,
		ReferenceID:   booking.TrackingID,
		SuccessURL:    pc.Cfg.PaymentSuccessURL,
		CancelURL:     pc.Cfg.PaymentCancelURL,
	})
	if err != nil {
		logger.Error("Failed to create checkout session", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ErrorResponse{
			Message: "Payment gateway unavailable",
			Status:  fiber.StatusBadGateway,
		})
	}

	encrypted, err := utils.EncryptData(session.ID)
	if err != nil {
		logger.Error("Failed to encrypt checkout session id", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to start checkout",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := pc.DB.Model(&booking).Update("checkout_session_encrypted", encrypted).Error; err != nil {
		logger.Error("Failed to store checkout session", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to start checkout",
			Status:  fiber.StatusInternalServerError,
		})
	}

	pc.Logger.Log(utils.CreateSanitizedLogEntry(c, booking.UserEmail))

	logger.Success("Checkout session opened for booking " + booking.TrackingID)
	return c.Status(fiber.StatusOK).JSON(paymentTypes.CheckoutSessionResponse{
		URL: session.URL,
	})
}

// PaymentSuccess exchanges a settled gateway session for a paid booking. The
// gateway is the source of truth: the booking only flips to paid after the
// session reports payment_status=paid. Replaying the exchange for an
// already-paid booking is a no-op that returns the recorded transaction.
func (pc *PaymentController) PaymentSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "session_id is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	session, err := pc.Checkout.GetSession(sessionID)
	if err != nil {
		logger.Error("Failed to fetch checkout session", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ErrorResponse{
			Message: "Payment gateway unavailable",
			Status:  fiber.StatusBadGateway,
		})
	}

	if !session.Paid() {
		return c.Status(fiber.StatusPaymentRequired).JSON(types.ErrorResponse{
			Message: "Payment has not been completed",
			Status:  fiber.StatusPaymentRequired,
		})
	}

	// The gateway echoes our tracking id as reference_id; the session id
	// itself is stored encrypted and cannot be searched.
	var booking bookingModel.Booking
	if err := pc.DB.Where("tracking_id = ?", session.ReferenceID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No booking matches this checkout session",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to resolve booking for session", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if booking.PaymentStatus == bookingModel.PaymentStatusPaid {
		var existing paymentModel.Payment
		if err := pc.DB.Where("tracking_id = ?", booking.TrackingID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusOK).JSON(paymentTypes.PaymentSuccessResponse{
				TransactionID: existing.TransactionID,
				TrackingID:    existing.TrackingID,
			})
		}
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Booking is already paid",
			Status:  fiber.StatusConflict,
		})
	}

	if booking.CheckoutSessionEncrypted != nil {
		stored, err := utils.DecryptData(*booking.CheckoutSessionEncrypted)
		if err != nil {
			logger.Error("Failed to decrypt stored checkout session", err)
		} else if stored != session.ID {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "Checkout session does not belong to this booking",
				Status:  fiber.StatusConflict,
			})
		}
	}

	record := paymentModel.Payment{
		Amount:        session.AmountTotal,
		TransactionID: utils.GenerateTransactionID(),
		TrackingID:    booking.TrackingID,
		ServiceName:   booking.ServiceName,
		CustomerEmail: booking.UserEmail,
		PaidAt:        time.Now(),
	}
	if session.PaymentIntent != "" {
		record.TransactionID = session.PaymentIntent
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"payment_status":             bookingModel.PaymentStatusPaid,
			"checkout_session_encrypted": nil,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		logger.Error("Failed to record payment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to record payment",
			Status:  fiber.StatusInternalServerError,
		})
	}

	pc.Logger.Log(utils.CreateSanitizedLogEntry(c, booking.UserEmail))

	logger.Success("Payment recorded for booking " + booking.TrackingID)
	return c.Status(fiber.StatusOK).JSON(paymentTypes.PaymentSuccessResponse{
		TransactionID: record.TransactionID,
		TrackingID:    record.TrackingID,
	})
}

// Index lists payment records. Customers only see their own; admins may
// filter by any email.
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	query := pc.DB.Model(&paymentModel.Payment{})

	email := c.Query("email")
	if middleware.CurrentRole(c) != constants.RoleAdmin {
		email = middleware.CurrentEmail(c)
	}
	if email != "" {
		query = query.Where("customer_email = ?", email)
	}

	var payments []paymentModel.Payment
	if err := query.Order("paid_at DESC").Find(&payments).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list payments",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var total float64
	for _, p := range payments {
		total += p.Amount
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  payments,
		"total": total,
	})
}
