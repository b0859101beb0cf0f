package user

import (
	"errors"

	"styledecor/logger"
	"styledecor/middleware"
	userModel "styledecor/models/user"
	"styledecor/types"
	userTypes "styledecor/types/user"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles admin user management.
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{DB: db, Logger: asyncLogger}
}

// Index lists users, optionally filtered by email, role and status. The
// assign-decorator modal uses ?role=decorator&status=approved to load
// candidates.
func (uc *UserController) Index(c *fiber.Ctx) error {
	query := uc.DB.Model(&userModel.User{})

	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var users []userModel.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// Update applies a partial update to a user record (role and profile fields).
func (uc *UserController) Update(c *fiber.Ctx) error {
	var req userTypes.UserUpdateRequest
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

	target, errResp := uc.findByID(c)
	if target == nil {
		return errResp
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}

	if err := uc.DB.Model(target).Updates(updates).Error; err != nil {
		logger.Error("Failed to update user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	uc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("User updated successfully: " + target.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User updated successfully",
		Status:  fiber.StatusOK,
		Data:    target,
	})
}

// UpdateStatus approves or disables a decorator account.
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	var req userTypes.StatusUpdateRequest
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

	target, errResp := uc.findByID(c)
	if target == nil {
		return errResp
	}

	if target.Role != userModel.RoleDecorator {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Status changes only apply to decorator accounts",
			Status:  fiber.StatusConflict,
		})
	}

	if err := uc.DB.Model(target).Update("status", req.Status).Error; err != nil {
		logger.Error("Failed to update decorator status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Decorator status set to " + req.Status + " for " + target.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Status updated successfully",
		Status:  fiber.StatusOK,
		Data:    target,
	})
}

// Delete removes a user account.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	target, errResp := uc.findByID(c)
	if target == nil {
		return errResp
	}

	if target.Email == middleware.CurrentEmail(c) {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "You cannot delete your own account",
			Status:  fiber.StatusConflict,
		})
	}

	if err := uc.DB.Delete(target).Error; err != nil {
		logger.Error("Failed to delete user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	uc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.CurrentEmail(c)))

	logger.Success("User deleted successfully: " + target.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// findByID loads the addressed user or writes the error response.
func (uc *UserController) findByID(c *fiber.Ctx) (*userModel.User, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var target userModel.User
	if err := uc.DB.First(&target, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to find user", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	return &target, nil
}
