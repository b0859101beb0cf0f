package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingCreateRequestValidate(t *testing.T) {
	valid := BookingCreateRequest{
		ServiceName: "Wedding Stage Decoration",
		Price:       25000,
		UserName:    "Amina",
		UserEmail:   "amina@example.com",
		Date:        "2026-09-15",
		Location:    "Dhaka",
	}
	assert.NoError(t, valid.Validate())

	t.Run("MissingService", func(t *testing.T) {
		r := valid
		r.ServiceName = ""
		assert.Error(t, r.Validate())
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		r := valid
		r.Price = 0
		assert.Error(t, r.Validate())
	})

	t.Run("MissingDate", func(t *testing.T) {
		r := valid
		r.Date = ""
		assert.Error(t, r.Validate())
	})
}

func TestBookingUpdateRequestValidate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, BookingUpdateRequest{}.Validate())
	})

	t.Run("SingleField", func(t *testing.T) {
		loc := "Chattogram"
		assert.NoError(t, BookingUpdateRequest{Location: &loc}.Validate())
	})

	t.Run("NegativePrice", func(t *testing.T) {
		price := -50.0
		assert.Error(t, BookingUpdateRequest{Price: &price}.Validate())
	})
}

func TestAssignDecoratorRequestValidate(t *testing.T) {
	assert.NoError(t, AssignDecoratorRequest{
		DecoratorEmail: "deco@example.com",
		DecoratorName:  "Deco",
	}.Validate())

	assert.Error(t, AssignDecoratorRequest{DecoratorName: "Deco"}.Validate())
	assert.Error(t, AssignDecoratorRequest{DecoratorEmail: "deco@example.com"}.Validate())
}

func TestDeliveryStatusUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, DeliveryStatusUpdateRequest{DeliveryStatus: "materials-prepared"}.Validate())
	assert.Error(t, DeliveryStatusUpdateRequest{}.Validate())
}
