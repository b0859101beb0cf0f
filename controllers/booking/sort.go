package booking

import (
	"sort"
	"strings"

	bookingModel "styledecor/models/booking"
)

// SortBookings orders a page of bookings in place. sortBy selects the key
// ("date" for the event date, "status" for the delivery status); order is
// "asc" or "desc". The sort is stable, so rows that compare equal keep their
// fetch order and asc/desc are exact reversals of one another.
func SortBookings(list []bookingModel.Booking, sortBy, order string) {
	if sortBy == "" {
		return
	}

	desc := strings.EqualFold(order, "desc")

	var less func(i, j int) bool
	switch sortBy {
	case "date":
		less = func(i, j int) bool {
			return list[i].Date < list[j].Date
		}
	case "status":
		less = func(i, j int) bool {
			a := strings.ToLower(list[i].DeliveryStatus.String())
			b := strings.ToLower(list[j].DeliveryStatus.String())
			return a < b
		}
	default:
		return
	}

	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(list, less)
}
