package service

import (
	"errors"

	"styledecor/cache"
	"styledecor/logger"
	"styledecor/middleware"
	serviceModel "styledecor/models/service"
	"styledecor/types"
	serviceTypes "styledecor/types/service"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const catalogCacheKey = "services:catalog"

// ServiceController handles the decoration catalog. Reads go through the
// cache; every write invalidates it.
type ServiceController struct {
	DB     *gorm.DB
	Cache  *cache.Cache
	Logger *logger.AsyncLogger
}

func NewServiceController(db *gorm.DB, c *cache.Cache, asyncLogger *logger.AsyncLogger) *ServiceController {
	return &ServiceController{DB: db, Cache: c, Logger: asyncLogger}
}

// Index lists the catalog. The unfiltered listing is served from cache when
// possible; category filtering always hits the database.
func (sc *ServiceController) Index(c *fiber.Ctx) error {
	category := c.Query("category")

	if category == "" {
		var cached []serviceModel.Service
		hit, err := sc.Cache.Get(c.Context(), catalogCacheKey, &cached)
		if err != nil {
			logger.Error("Cache read failed, falling back to database", err)
		}
		if hit {
			return c.Status(fiber.StatusOK).JSON(cached)
		}
	}

	query := sc.DB.Model(&serviceModel.Service{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var services []serviceModel.Service
	if err := query.Order("created_at DESC").Find(&services).Error; err != nil {
		logger.Error("Failed to list services", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list services",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if category == "" {
		if err := sc.Cache.Set(c.Context(), catalogCacheKey, services); err != nil {
			logger.Error("Cache write failed", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(services)
}

// Show returns a single catalog entry.
func (sc *ServiceController) Show(c *fiber.Ctx) error {
	svc, errResp := sc.findByID(c)
	if svc == nil {
		return errResp
	}
	return c.Status(fiber.StatusOK).JSON(svc)
}

// Store creates a catalog entry (admin only).
func (sc *ServiceController) Store(c *fiber.Ctx) error {
	var req serviceTypes.ServiceCreateRequest
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

	svc := serviceModel.Service{
		ServiceName:    req.ServiceName,
		Cost:           req.Cost,
		Unit:           req.Unit,
		Category:       req.Category,
		Rating:         req.Rating,
		Description:    req.Description,
		Image:          req.Image,
		CreatedByEmail: middleware.CurrentEmail(c),
	}

	if err := sc.DB.Create(&svc).Error; err != nil {
		logger.Error("Failed to create service", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create service",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := sc.Cache.Invalidate(c.Context(), catalogCacheKey); err != nil {
		logger.Error("Cache invalidation failed", err)
	}
	sc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("Service created successfully: " + svc.ServiceName)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Service created successfully",
		Status:  fiber.StatusCreated,
		Data:    svc,
	})
}

// Update merges submitted fields into a catalog entry (admin only).
func (sc *ServiceController) Update(c *fiber.Ctx) error {
	var req serviceTypes.ServiceUpdateRequest
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

	svc, errResp := sc.findByID(c)
	if svc == nil {
		return errResp
	}

	updates := map[string]interface{}{}
	if req.ServiceName != nil {
		updates["service_name"] = *req.ServiceName
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if err := sc.DB.Model(svc).Updates(updates).Error; err != nil {
		logger.Error("Failed to update service", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update service",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := sc.Cache.Invalidate(c.Context(), catalogCacheKey); err != nil {
		logger.Error("Cache invalidation failed", err)
	}

	logger.Success("Service updated successfully: " + svc.ServiceName)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Service updated successfully",
		Status:  fiber.StatusOK,
		Data:    svc,
	})
}

// Delete removes a catalog entry (admin only).
func (sc *ServiceController) Delete(c *fiber.Ctx) error {
	svc, errResp := sc.findByID(c)
	if svc == nil {
		return errResp
	}

	if err := sc.DB.Delete(svc).Error; err != nil {
		logger.Error("Failed to delete service", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete service",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := sc.Cache.Invalidate(c.Context(), catalogCacheKey); err != nil {
		logger.Error("Cache invalidation failed", err)
	}
	sc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("Service deleted successfully: " + svc.ServiceName)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Service deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// findByID loads the addressed service or writes the error response.
func (sc *ServiceController) findByID(c *fiber.Ctx) (*serviceModel.Service, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid service id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var svc serviceModel.Service
	if err := sc.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Service not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to find service", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	return &svc, nil
}
