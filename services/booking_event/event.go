package booking_event

import (
	bookingModel "styledecor/models/booking"

	"gorm.io/gorm"
)

// RecordStatusEvent appends an audit row for a booking's delivery-status
// change. Runs inside the caller's transaction so the event and the status
// update commit together.
func RecordStatusEvent(tx *gorm.DB, b *bookingModel.Booking, status bookingModel.DeliveryStatus, updatedBy string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID: b.ID,
		Status:    status,
		CreatedBy: updatedBy,
	}
	return tx.Create(&ev).Error
}
