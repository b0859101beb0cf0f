package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"styledecor/database"
	"styledecor/models/user"
	"styledecor/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserByEmail loads the user record for an authenticated identity. Callers
// must treat a nil user as "no access" (fail closed).
func GetUserByEmail(email string) (*user.User, error) {
	if email == "" {
		return nil, errors.New("email is empty")
	}

	var u user.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// GenerateTrackingID returns a customer-facing booking reference, e.g.
// SD-20260828-1A2B3C4D.
func GenerateTrackingID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("SD-%s-%s", time.Now().Format("20060102"), suffix)
}

// GenerateTransactionID returns a unique payment transaction reference.
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
}

// sanitizeRequestBody truncates bodies that carry inline file content so the
// audit table never stores image payloads.
func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})
		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 {
					formData[key] = values[0]
				}
			}
			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}
		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 1000 && (strings.Contains(body, "data:image/") || strings.Contains(body, "base64")) {
		return "[LARGE_REQUEST_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}
	return body
}

// CreateSanitizedLogEntry builds a deep-copied audit entry for the async
// logger. Copies guard against fasthttp buffer reuse after the handler
// returns.
func CreateSanitizedLogEntry(c *fiber.Ctx, actorEmail string) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		ActorEmail:      actorEmail,
		CreatedAt:       time.Now(),
	}
}

// TotalPages computes the page count for a collection of total rows.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 1
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}
