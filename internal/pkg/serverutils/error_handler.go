package serverutils

import (
	"errors"

	"plantcare-be/internal/pkg/apperror"
	"plantcare-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the fiber Locals key the requestid middleware stores under.
const RequestIDKey = "request_id"

// ErrorHandler converts every error returned by a handler (or recovered from a
// panic) into the public JSON shape:
//
//	{"error": "...", "missing_features": [...], "<fallback key>": "..."}
func ErrorHandler(sysLogger logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		appErr := apperror.From(err)
		status := appErr.Status()

		body := fiber.Map{"error": appErr.Detail()}
		if len(appErr.Missing) > 0 {
			body["missing_features"] = appErr.Missing
		}
		if appErr.Fallback != nil {
			body[appErr.Fallback.Key] = appErr.Fallback.Text
		}

		if status >= fiber.StatusInternalServerError {
			sysLogger.Error("http", "Request failed", map[string]interface{}{
				"request_id": RequestID(ctx),
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"status":     status,
				"kind":       appErr.Kind.String(),
				"error":      appErr.Error(),
			})
		}

		return ctx.Status(status).JSON(body)
	}
}

func RequestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
