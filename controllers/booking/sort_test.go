package booking

import (
	"testing"

	bookingModel "styledecor/models/booking"

	"github.com/stretchr/testify/assert"
)

func fixtures() []bookingModel.Booking {
	return []bookingModel.Booking{
		{ID: 1, Date: "2026-09-10", DeliveryStatus: bookingModel.DeliveryStatusPlanning},
		{ID: 2, Date: "2026-09-01", DeliveryStatus: bookingModel.DeliveryStatusCompleted},
		{ID: 3, Date: "2026-09-05", DeliveryStatus: bookingModel.DeliveryStatusMaterialsPrepared},
		{ID: 4, Date: "2026-09-03", DeliveryStatus: bookingModel.DeliveryStatusOnTheWay},
	}
}

func ids(list []bookingModel.Booking) []uint {
	out := make([]uint, len(list))
	for i, b := range list {
		out[i] = b.ID
	}
	return out
}

func TestSortBookingsByDate(t *testing.T) {
	asc := fixtures()
	SortBookings(asc, "date", "asc")
	assert.Equal(t, []uint{2, 4, 3, 1}, ids(asc))

	desc := fixtures()
	SortBookings(desc, "date", "desc")
	assert.Equal(t, []uint{1, 3, 4, 2}, ids(desc), "desc must be the exact reversal of asc")
}

func TestSortBookingsByStatus(t *testing.T) {
	// Status ordering is case-insensitive, so "Completed" sorts among the
	// lowercase stages rather than before all of them.
	asc := fixtures()
	SortBookings(asc, "status", "asc")
	assert.Equal(t, []uint{2, 3, 4, 1}, ids(asc))

	desc := fixtures()
	SortBookings(desc, "status", "desc")
	assert.Equal(t, []uint{1, 4, 3, 2}, ids(desc))
}

func TestSortBookingsStableOnTies(t *testing.T) {
	list := []bookingModel.Booking{
		{ID: 1, Date: "2026-09-01"},
		{ID: 2, Date: "2026-09-01"},
		{ID: 3, Date: "2026-09-01"},
	}
	SortBookings(list, "date", "asc")
	assert.Equal(t, []uint{1, 2, 3}, ids(list), "equal keys keep fetch order")
}

func TestSortBookingsUnknownKeyIsNoop(t *testing.T) {
	list := fixtures()
	SortBookings(list, "price", "asc")
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(list))

	list = fixtures()
	SortBookings(list, "", "desc")
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(list))
}
