package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "markd/internal/delivery/context"
	"markd/internal/delivery/http/response"
	domainerrors "markd/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware centralizes error rendering for the whole HTTP surface.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their mapped status and business code; everything else collapses into a
// generic 500 so internals never leak to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("errorCode", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		} else {
			logger.Debug("Request rejected",
				slog.String("errorCode", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		if writeErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()); writeErr != nil {
			logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		if writeErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""); writeErr != nil {
			logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	if writeErr := response.Error(c,
		http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(),
		"",
	); writeErr != nil {
		logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
