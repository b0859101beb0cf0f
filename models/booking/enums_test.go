package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryPipelineOrder(t *testing.T) {
	stages := GetAllDeliveryStatuses()
	require.Len(t, stages, 5)

	// Every non-terminal stage has exactly one legal successor, and it is
	// the next stage in pipeline order.
	for i := 0; i < len(stages)-1; i++ {
		next, ok := stages[i].Next()
		require.True(t, ok, "stage %s must have a successor", stages[i])
		assert.Equal(t, stages[i+1], next)
	}

	_, ok := DeliveryStatusCompleted.Next()
	assert.False(t, ok, "Completed is terminal")
	assert.True(t, DeliveryStatusCompleted.IsTerminal())
}

func TestCanTransitionNeverSkips(t *testing.T) {
	stages := GetAllDeliveryStatuses()

	for i, from := range stages {
		for j, to := range stages {
			got := CanTransition(from, to)
			want := j == i+1
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestParseDeliveryStatus(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		for _, ds := range GetAllDeliveryStatuses() {
			assert.Equal(t, ds, ParseDeliveryStatus(ds.String()))
		}
	})

	t.Run("UnknownFallsBack", func(t *testing.T) {
		for _, raw := range []string{"", "shipped", "PLANNING-PHASE", "completed", "done"} {
			got := ParseDeliveryStatus(raw)
			assert.Equal(t, DeliveryStatusUnknown, got, "raw=%q", raw)
			assert.False(t, got.IsValid())

			_, ok := got.Next()
			assert.False(t, ok, "unknown status must offer no transition")
		}
	})
}

func TestBookingCanAssignDecorator(t *testing.T) {
	cases := []struct {
		name     string
		payment  PaymentStatus
		delivery DeliveryStatus
		want     bool
	}{
		{"PaidPlanning", PaymentStatusPaid, DeliveryStatusPlanning, true},
		{"UnpaidPlanning", PaymentStatusUnpaid, DeliveryStatusPlanning, false},
		{"PaidMaterialsPrepared", PaymentStatusPaid, DeliveryStatusMaterialsPrepared, false},
		{"PaidCompleted", PaymentStatusPaid, DeliveryStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{PaymentStatus: tc.payment, DeliveryStatus: tc.delivery}
			assert.Equal(t, tc.want, b.CanAssignDecorator())
		})
	}
}

func TestBookingCanAdvanceTo(t *testing.T) {
	t.Run("UnpaidNeverAdvances", func(t *testing.T) {
		b := Booking{PaymentStatus: PaymentStatusUnpaid, DeliveryStatus: DeliveryStatusPlanning}
		for _, to := range GetAllDeliveryStatuses() {
			assert.False(t, b.CanAdvanceTo(to))
		}
	})

	t.Run("PaidAdvancesOneStep", func(t *testing.T) {
		b := Booking{PaymentStatus: PaymentStatusPaid, DeliveryStatus: DeliveryStatusMaterialsPrepared}
		assert.True(t, b.CanAdvanceTo(DeliveryStatusOnTheWay))
		assert.False(t, b.CanAdvanceTo(DeliveryStatusSetupInProgress), "skipping a stage is never allowed")
		assert.False(t, b.CanAdvanceTo(DeliveryStatusPlanning), "the pipeline never moves backwards")
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		b := Booking{PaymentStatus: PaymentStatusPaid, DeliveryStatus: DeliveryStatusCompleted}
		for _, to := range GetAllDeliveryStatuses() {
			assert.False(t, b.CanAdvanceTo(to))
		}
	})
}
