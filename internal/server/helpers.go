package server

import (
	"errors"
	"strings"

	"devconnect/internal/middleware"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// bearerToken extracts the Bearer token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "commentId" -> "comment ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps an application error to its HTTP status and
// writes the standardized error body. Internal errors are logged with the
// request context; other codes pass the message through.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	switch appErr.Code {
	case models.CodeValidation, models.CodeAlreadyLiked, models.CodeNotLiked, models.CodeAlreadyExists:
		return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
	case models.CodeUnauthenticated, models.CodeInvalidToken, models.CodeForbidden:
		return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
	case models.CodeNotFound:
		return models.RespondWithError(c, fiber.StatusNotFound, appErr)
	default:
		middleware.Logger.ErrorContext(c.UserContext(), "internal error", "error", appErr.Error())
		return models.RespondWithError(c, fiber.StatusInternalServerError, appErr)
	}
}
