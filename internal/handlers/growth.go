package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/growth"
)

type CompoundInterestRequest struct {
	Principal                *float64 `json:"principal" validate:"required,gte=0,lte=1000000000000"`
	InterestRate             *float64 `json:"interest_rate" validate:"required,gte=0,lte=100"`
	TimePeriod               *int     `json:"time_period" validate:"required,gte=1,lte=100"`
	CompoundingFrequency     *string  `json:"compounding_frequency"`
	MonthlyContribution      *float64 `json:"monthly_contribution" validate:"omitempty,gte=0,lte=1000000000000"`
	TaxRate                  *float64 `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	InflationRate            *float64 `json:"inflation_rate" validate:"omitempty,gte=0,lte=100"`
	ContributionIncreaseRate *float64 `json:"contribution_increase_rate" validate:"omitempty,gte=0,lte=100"`
}

// toInput оставляет нулевую частоту для неизвестного значения, ее отклонит валидация.
func (r CompoundInterestRequest) toInput() growth.Input {
	frequency := growth.Monthly
	if r.CompoundingFrequency != nil {
		frequency, _ = growth.ParseFrequency(*r.CompoundingFrequency)
	}

	return growth.Input{
		Principal:                amount(r.Principal),
		AnnualRate:               percent(r.InterestRate),
		Years:                    intOr(r.TimePeriod, 0),
		Frequency:                frequency,
		MonthlyContribution:      amount(r.MonthlyContribution),
		TaxRate:                  percent(r.TaxRate),
		InflationRate:            percent(r.InflationRate),
		ContributionIncreaseRate: percent(r.ContributionIncreaseRate),
	}
}

// CalculateCompoundInterest рассчитывает рост капитала со сложным процентом.
func (h *CalculatorHandler) CalculateCompoundInterest(c echo.Context) error {
	var req CompoundInterestRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	result, err := h.Growth.Project(req.toInput())
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	return c.JSON(http.StatusOK, result)
}
