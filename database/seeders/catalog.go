package seeders

import (
	"styledecor/logger"
	serviceModel "styledecor/models/service"
	userModel "styledecor/models/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account if none exists.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&userModel.User{}).Where("role = ?", userModel.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.User{
		Name:         "StyleDecor Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         userModel.RoleAdmin,
		Status:       userModel.StatusApproved,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Success("Seeded bootstrap admin account: " + email)
	return nil
}

// SeedServices inserts the starter catalog when the services table is empty.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&serviceModel.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []serviceModel.Service{
		{
			ServiceName:    "Wedding Stage Decoration",
			Cost:           25000,
			Unit:           "per event",
			Category:       "Wedding",
			Rating:         4.8,
			Description:    "Full stage setup with floral arch, drapery and ambient lighting.",
			CreatedByEmail: "admin@styledecor.io",
		},
		{
			ServiceName:    "Birthday Party Setup",
			Cost:           8000,
			Unit:           "per event",
			Category:       "Birthday",
			Rating:         4.6,
			Description:    "Balloon arches, themed backdrop and table styling.",
			CreatedByEmail: "admin@styledecor.io",
		},
		{
			ServiceName:    "Home Interior Styling",
			Cost:           15000,
			Unit:           "per room",
			Category:       "Home",
			Rating:         4.7,
			Description:    "Seasonal refresh of living spaces with curated decor pieces.",
			CreatedByEmail: "admin@styledecor.io",
		},
		{
			ServiceName:    "Corporate Event Decoration",
			Cost:           30000,
			Unit:           "per event",
			Category:       "Corporate",
			Rating:         4.5,
			Description:    "Branded staging, entrance styling and lounge areas.",
			CreatedByEmail: "admin@styledecor.io",
		},
	}

	if err := db.Create(&services).Error; err != nil {
		return err
	}
	logger.Success("Seeded starter service catalog")
	return nil
}
