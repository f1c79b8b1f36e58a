package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serviceName = "financial-advisor"

type HealthResponse struct {
	Status      string   `json:"status"`
	Service     string   `json:"service"`
	Calculators []string `json:"calculators"`
}

// Health возвращает статус сервиса и список доступных калькуляторов.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Service:     serviceName,
		Calculators: []string{"retirement", "mortgage", "compound-interest"},
	})
}
