package booking

import (
	"fmt"
	"time"

	"styledecor/logger"
	bookingModel "styledecor/models/booking"
	"styledecor/types"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Tracking ID", "Service", "Price", "Customer", "Customer Email",
	"Event Date", "Location", "Payment Status", "Delivery Status",
	"Decorator", "Booked At",
}

// Export streams the full booking ledger as an xlsx workbook (admin only).
func (bc *BookingController) Export(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings for export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Bookings"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, b := range bookings {
		decorator := ""
		if b.DecoratorEmail != nil {
			decorator = *b.DecoratorEmail
		}
		values := []interface{}{
			b.TrackingID, b.ServiceName, b.Price, b.UserName, b.UserEmail,
			b.Date, b.Location, b.PaymentStatus.String(), b.DeliveryStatus.String(),
			decorator, b.BookingsDate.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to build export workbook", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
