package booking

import (
	"errors"
	"fmt"
	"time"

	"styledecor/constants"
	"styledecor/logger"
	"styledecor/metrics"
	"styledecor/middleware"
	bookingModel "styledecor/models/booking"
	userModel "styledecor/models/user"
	"styledecor/services/booking_event"
	"styledecor/types"
	bookingTypes "styledecor/types/booking"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingController handles the booking lifecycle: creation, the role-scoped
// dashboard listings, decorator assignment and the delivery pipeline.
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Logger: asyncLogger}
}

// Store places a new booking. New bookings always start unpaid and in
// planning-phase; customers cannot book on someone else's behalf.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
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

	email := middleware.CurrentEmail(c)
	if middleware.CurrentRole(c) == constants.RoleUser {
		req.UserEmail = email
	}
	if req.UserEmail == "" {
		req.UserEmail = email
	}

	booking := bookingModel.Booking{
		ServiceName:    req.ServiceName,
		Price:          req.Price,
		Category:       req.Category,
		Image:          req.Image,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		Date:           req.Date,
		Location:       req.Location,
		BookingsDate:   time.Now(),
		TrackingID:     utils.GenerateTrackingID(),
		PaymentStatus:  bookingModel.PaymentStatusUnpaid,
		DeliveryStatus: bookingModel.DeliveryStatusPlanning,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c, email))

	logger.Success("Booking created: " + booking.TrackingID)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    booking,
	})
}

// Index lists bookings scoped to the caller's role: customers see their own,
// decorators see their assignments, admins see everything. Supports
// email/paymentStatus/deliveryStatus filters, sortBy=date|status with
// order=asc|desc, and page/limit pagination.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := bc.DB.Model(&bookingModel.Booking{})

	switch middleware.CurrentRole(c) {
	case constants.RoleAdmin:
		if email := c.Query("email"); email != "" {
			query = query.Where("user_email = ?", email)
		}
		if decorator := c.Query("decoratorEmail"); decorator != "" {
			query = query.Where("decorator_email = ?", decorator)
		}
	case constants.RoleDecorator:
		query = query.Where("decorator_email = ?", middleware.CurrentEmail(c))
	default:
		query = query.Where("user_email = ?", middleware.CurrentEmail(c))
	}

	if ps := c.Query("paymentStatus"); ps != "" {
		query = query.Where("payment_status = ?", ps)
	}
	if ds := c.Query("deliveryStatus"); ds != "" {
		query = query.Where("delivery_status = ?", ds)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var bookings []bookingModel.Booking
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	SortBookings(bookings, c.Query("sortBy"), c.Query("order", "asc"))

	return c.Status(fiber.StatusOK).JSON(types.PagedResponse{
		Data:       bookings,
		TotalPages: utils.TotalPages(total, limit),
		Page:       page,
		Limit:      limit,
	})
}

// Show returns a single booking if the caller may see it.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	booking, errResp := bc.findByID(c)
	if booking == nil {
		return errResp
	}

	if !bc.canView(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}

// Update merges editable fields into a booking. Customers may edit their own
// bookings; admins may edit any. Payment and delivery state never change here.
func (bc *BookingController) Update(c *fiber.Ctx) error {
	var req bookingTypes.BookingUpdateRequest
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

	booking, errResp := bc.findByID(c)
	if booking == nil {
		return errResp
	}

	if !bc.canModify(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if err := bc.DB.Model(booking).Updates(updates).Error; err != nil {
		logger.Error("Failed to update booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("Booking updated: " + booking.TrackingID)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking updated successfully",
		Status:  fiber.StatusOK,
		Data:    booking,
	})
}

// Delete cancels a booking. Customers may cancel their own; admins any.
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	booking, errResp := bc.findByID(c)
	if booking == nil {
		return errResp
	}

	if !bc.canModify(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}

	if err := bc.DB.Delete(booking).Error; err != nil {
		logger.Error("Failed to delete booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("Booking deleted: " + booking.TrackingID)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// AssignDecorator assigns an approved decorator to a paid planning-phase
// booking and moves it to materials-prepared in the same transaction.
func (bc *BookingController) AssignDecorator(c *fiber.Ctx) error {
	var req bookingTypes.AssignDecoratorRequest
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

	booking, errResp := bc.findByID(c)
	if booking == nil {
		return errResp
	}

	if !booking.CanAssignDecorator() {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Decorator can only be assigned to a paid booking in planning-phase",
			Status:  fiber.StatusConflict,
		})
	}

	candidate, err := utils.GetUserByEmail(req.DecoratorEmail)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
			Message: "Decorator not found",
			Status:  fiber.StatusNotFound,
		})
	}
	if candidate.Role != userModel.RoleDecorator || candidate.Status != userModel.StatusApproved {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Selected account is not an approved decorator",
			Status:  fiber.StatusConflict,
		})
	}

	decoratorStatus := req.DecoratorStatus
	if decoratorStatus == "" {
		decoratorStatus = "assigned"
	}

	next := bookingModel.DeliveryStatusMaterialsPrepared
	actor := middleware.CurrentEmail(c)

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"decorator_email":  req.DecoratorEmail,
			"decorator_name":   req.DecoratorName,
			"decorator_status": decoratorStatus,
			"delivery_status":  next,
		}
		if err := tx.Model(booking).Updates(updates).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, booking, next, actor)
	})
	if err != nil {
		logger.Error("Failed to assign decorator", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to assign decorator",
			Status:  fiber.StatusInternalServerError,
		})
	}

	metrics.IncTransition(next.String())
	bc.Logger.Log(utils.CreateSanitizedLogEntry(c, actor))

	logger.Success(fmt.Sprintf("Decorator %s assigned to booking %s", req.DecoratorEmail, booking.TrackingID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Decorator assigned successfully",
		Status:  fiber.StatusOK,
		Data:    booking,
	})
}

// UpdateDeliveryStatus advances a booking one step along the delivery
// pipeline. Only the assigned decorator may advance, stages cannot be
// skipped, and Completed is terminal.
func (bc *BookingController) UpdateDeliveryStatus(c *fiber.Ctx) error {
	var req bookingTypes.DeliveryStatusUpdateRequest
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

	target := bookingModel.ParseDeliveryStatus(req.DeliveryStatus)
	if target == bookingModel.DeliveryStatusUnknown {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Unknown delivery status: " + req.DeliveryStatus,
			Status:  fiber.StatusBadRequest,
		})
	}

	booking, errResp := bc.findByID(c)
	if booking == nil {
		return errResp
	}

	actor := middleware.CurrentEmail(c)
	if middleware.CurrentRole(c) == constants.RoleDecorator {
		if booking.DecoratorEmail == nil || *booking.DecoratorEmail != actor {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Booking is not assigned to you",
				Status:  fiber.StatusForbidden,
			})
		}
	}

	if !booking.CanAdvanceTo(target) {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Cannot move booking from %s to %s", booking.DeliveryStatus, target),
			Status:  fiber.StatusConflict,
		})
	}

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Update("delivery_status", target).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, booking, target, actor)
	})
	if err != nil {
		logger.Error("Failed to update delivery status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update delivery status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	metrics.IncTransition(target.String())
	bc.Logger.Log(utils.CreateSanitizedLogEntry(c, actor))

	logger.Success(fmt.Sprintf("Booking %s moved to %s", booking.TrackingID, target))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Delivery status updated successfully",
		Status:  fiber.StatusOK,
		Data:    booking,
	})
}

// Today returns the calling decorator's assignments whose event date falls on
// the current day.
func (bc *BookingController) Today(c *fiber.Ctx) error {
	today := now.BeginningOfDay().Format("2006-01-02")

	var bookings []bookingModel.Booking
	err := bc.DB.
		Where("decorator_email = ?", middleware.CurrentEmail(c)).
		Where("date = ?", today).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to load today's schedule", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load today's schedule",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

// canView reports whether the caller may read the booking.
func (bc *BookingController) canView(c *fiber.Ctx, b *bookingModel.Booking) bool {
	switch middleware.CurrentRole(c) {
	case constants.RoleAdmin:
		return true
	case constants.RoleDecorator:
		return b.DecoratorEmail != nil && *b.DecoratorEmail == middleware.CurrentEmail(c)
	default:
		return b.UserEmail == middleware.CurrentEmail(c)
	}
}

// canModify reports whether the caller may edit or cancel the booking.
func (bc *BookingController) canModify(c *fiber.Ctx, b *bookingModel.Booking) bool {
	if middleware.CurrentRole(c) == constants.RoleAdmin {
		return true
	}
	return b.UserEmail == middleware.CurrentEmail(c)
}

// findByID loads the addressed booking or writes the error response.
func (bc *BookingController) findByID(c *fiber.Ctx) (*bookingModel.Booking, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var booking bookingModel.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to find booking", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	return &booking, nil
}
