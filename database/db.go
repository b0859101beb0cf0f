package database

import (
	"fmt"

	"styledecor/config"
	"styledecor/logger"
	bookingModel "styledecor/models/booking"
	logModel "styledecor/models/log"
	paymentModel "styledecor/models/payment"
	serviceModel "styledecor/models/service"
	userModel "styledecor/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB(cfg config.App) (*gorm.DB, error) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&userModel.User{},
		&serviceModel.Service{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Models with dependencies on Stage 1
	stage2Models := []interface{}{
		&bookingModel.Booking{},
		&bookingModel.BookingStatusEvent{},
		&paymentModel.Payment{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Remaining models
	remainingModels := []interface{}{
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// User indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_role_status ON users(role, status)").Error; err != nil {
		return fmt.Errorf("failed to create user role/status index: %w", err)
	}

	// Service indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_services_category ON services(category)").Error; err != nil {
		return fmt.Errorf("failed to create service category index: %w", err)
	}

	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_email ON bookings(user_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking user_email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_decorator_email ON bookings(decorator_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking decorator_email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_delivery_status ON bookings(delivery_status)").Error; err != nil {
		return fmt.Errorf("failed to create booking delivery_status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_tracking_id ON bookings(tracking_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking tracking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking created_at index: %w", err)
	}

	// Payment indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_customer_email ON payments(customer_email)").Error; err != nil {
		return fmt.Errorf("failed to create payment customer_email index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
