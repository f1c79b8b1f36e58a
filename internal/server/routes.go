package server

import (
	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	calculatorHandler *handlers.CalculatorHandler,
	authMiddleware echo.MiddlewareFunc,
	rateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	calculators := e.Group("/calculators", rateLimiter, authMiddleware)
	calculators.POST("/retirement", calculatorHandler.CalculateRetirement)
	calculators.POST("/mortgage", calculatorHandler.CalculateMortgage)
	calculators.POST("/mortgage/schedule.csv", calculatorHandler.ExportMortgageSchedule)
	calculators.POST("/compound-interest", calculatorHandler.CalculateCompoundInterest)
}
