package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/validation"
)

type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func validationFailed(c echo.Context, err *validation.Error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: err.Fields})
}

// respondError отдает 400 для ошибок валидации и 500 для остальных.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return validationFailed(c, verr)
	}

	logger.ErrorContext(c.Request().Context(), "calculation failed",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return serverError(c)
}
