package booking

// PaymentStatus is the payment axis of a booking. It is independent of the
// delivery pipeline: a booking can sit in planning-phase both before and
// after payment, but it can never leave planning-phase while unpaid.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	return ps == PaymentStatusUnpaid || ps == PaymentStatusPaid
}

// DeliveryStatus is the fulfillment-pipeline stage of a booking.
//
// The literal values (including the capitalized "Completed") match the wire
// contract consumed by the dashboard clients and must not be normalized.
type DeliveryStatus string

const (
	DeliveryStatusPlanning          DeliveryStatus = "planning-phase"
	DeliveryStatusMaterialsPrepared DeliveryStatus = "materials-prepared"
	DeliveryStatusOnTheWay          DeliveryStatus = "on-the-way-to-venue"
	DeliveryStatusSetupInProgress   DeliveryStatus = "setup-in-progress"
	DeliveryStatusCompleted         DeliveryStatus = "Completed"

	// DeliveryStatusUnknown is the safe fallback for unrecognized values.
	// Callers treat it as "no action available", never as an error.
	DeliveryStatusUnknown DeliveryStatus = ""
)

func (ds DeliveryStatus) String() string {
	return string(ds)
}

func (ds DeliveryStatus) IsValid() bool {
	switch ds {
	case DeliveryStatusPlanning, DeliveryStatusMaterialsPrepared, DeliveryStatusOnTheWay,
		DeliveryStatusSetupInProgress, DeliveryStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further delivery transition exists.
func (ds DeliveryStatus) IsTerminal() bool {
	return ds == DeliveryStatusCompleted
}

// ParseDeliveryStatus maps a raw string onto the closed status set.
// Unrecognized input collapses to DeliveryStatusUnknown.
func ParseDeliveryStatus(raw string) DeliveryStatus {
	ds := DeliveryStatus(raw)
	if !ds.IsValid() {
		return DeliveryStatusUnknown
	}
	return ds
}

// validNext is the single authoritative transition table for the delivery
// pipeline. Every stage has exactly one legal successor; Completed has none.
var validNext = map[DeliveryStatus]DeliveryStatus{
	DeliveryStatusPlanning:          DeliveryStatusMaterialsPrepared,
	DeliveryStatusMaterialsPrepared: DeliveryStatusOnTheWay,
	DeliveryStatusOnTheWay:          DeliveryStatusSetupInProgress,
	DeliveryStatusSetupInProgress:   DeliveryStatusCompleted,
}

// Next returns the single legal successor of ds, if any.
func (ds DeliveryStatus) Next() (DeliveryStatus, bool) {
	next, ok := validNext[ds]
	return next, ok
}

// CanTransition reports whether from -> to is the legal next step. Skipping
// stages is never allowed.
func CanTransition(from, to DeliveryStatus) bool {
	next, ok := validNext[from]
	return ok && next == to
}

// GetAllDeliveryStatuses returns all valid delivery statuses in pipeline order.
func GetAllDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryStatusPlanning,
		DeliveryStatusMaterialsPrepared,
		DeliveryStatusOnTheWay,
		DeliveryStatusSetupInProgress,
		DeliveryStatusCompleted,
	}
}
