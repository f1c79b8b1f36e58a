package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/growth"
	"github.com/JosefinHao/financial-advisor/internal/mortgage"
	"github.com/JosefinHao/financial-advisor/internal/retirement"
	"github.com/JosefinHao/financial-advisor/internal/validation"
)

// CalculatorHandler обслуживает эндпоинты финансовых калькуляторов.
type CalculatorHandler struct {
	Retirement          *retirement.Projector
	Mortgage            *mortgage.Amortizer
	Growth              *growth.Projector
	DefaultAnnualIncome float64
	Logger              *slog.Logger
}

// NewCalculatorHandler создает обработчик с общим валидатором для всех калькуляторов.
func NewCalculatorHandler(v *validation.Validator, defaultAnnualIncome float64, logger *slog.Logger) *CalculatorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CalculatorHandler{
		Retirement:          retirement.NewProjector(v),
		Mortgage:            mortgage.NewAmortizer(v),
		Growth:              growth.NewProjector(v),
		DefaultAnnualIncome: defaultAnnualIncome,
		Logger:              logger,
	}
}

// bindRequest разбирает тело и проверяет DTO валидатором echo.
func bindRequest(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		if verr, ok := err.(*validation.Error); ok {
			return false, validationFailed(c, verr)
		}
		return false, badRequest(c, "validation failed")
	}
	return true, nil
}

func percent(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value / 100
}

func amount(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
