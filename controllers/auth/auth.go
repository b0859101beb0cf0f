package auth

import (
	"errors"
	"fmt"

	"styledecor/config"
	"styledecor/logger"
	"styledecor/middleware"
	userModel "styledecor/models/user"
	"styledecor/types"
	"styledecor/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	cfg            config.App
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, cfg config.App, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, cfg: cfg, loggerInstance: asyncLogger}
}

// setSecureCookie sets auth cookies; Secure only in production (HTTPS).
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   h.cfg.AppEnv == "production",
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates an account. role=decorator registers a decorator
// application, which starts pending until an admin approves it.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing userModel.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "An account with this email already exists",
			Status:  fiber.StatusConflict,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	role := userModel.RoleUser
	status := userModel.StatusApproved
	if req.Role == "decorator" {
		role = userModel.RoleDecorator
		status = userModel.StatusPending
	}

	newUser := userModel.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		Address:      req.Address,
		Experience:   req.Experience,
		PhotoURL:     req.PhotoURL,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	token, err := middleware.IssueToken(h.cfg.JWTSecret, newUser.Email, newUser.Name, h.cfg.JWTExpiry)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Account created but failed to start session",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, int(h.cfg.JWTExpiry.Seconds()))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, newUser.Email))

	logger.Success("User registered successfully: " + newUser.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Account created successfully",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    newUser,
	})
}

// Login verifies credentials and starts a session.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
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

	var account userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Database error during login", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := middleware.IssueToken(h.cfg.JWTSecret, account.Email, account.Name, h.cfg.JWTExpiry)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to start session",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, int(h.cfg.JWTExpiry.Seconds()))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, account.Email))

	logger.Success(fmt.Sprintf("User logged in successfully: %s (role=%s)", account.Email, account.Role))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    account,
	})
}

// LogOut clears the session cookie. Tokens are short-lived; there is no
// server-side revocation list.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
	})
}

// Profile returns the authenticated user's record, including the resolved
// role the dashboard uses for menu building.
func (h *AuthController) Profile(c *fiber.Ctx) error {
	email := middleware.CurrentEmail(c)

	account, err := utils.GetUserByEmail(email)
	if err != nil {
		logger.Error("Failed to load profile for "+email, err)
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}
