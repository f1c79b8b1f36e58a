package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/retirement"
)

// RetirementRequest принимает ставки в процентах, суммы в долларах.
type RetirementRequest struct {
	CurrentAge              *int     `json:"current_age" validate:"required,gte=18,lte=100"`
	RetirementAge           *int     `json:"retirement_age" validate:"required,lte=100"`
	CurrentSavings          *float64 `json:"current_savings" validate:"required,gte=0,lte=1000000000000"`
	MonthlyContribution     *float64 `json:"monthly_contribution" validate:"required,gte=0,lte=1000000000000"`
	ExpectedReturn          *float64 `json:"expected_return" validate:"required,gte=0,lte=100"`
	LifeExpectancy          *int     `json:"life_expectancy" validate:"omitempty,lte=120"`
	InflationRate           *float64 `json:"inflation_rate" validate:"omitempty,gte=0,lte=100"`
	SocialSecurityIncome    *float64 `json:"social_security_income" validate:"omitempty,gte=0,lte=1000000000000"`
	PensionIncome           *float64 `json:"pension_income" validate:"omitempty,gte=0,lte=1000000000000"`
	DesiredRetirementIncome *float64 `json:"desired_retirement_income" validate:"omitempty,gte=0,lte=1000000000000"`
}

func (r RetirementRequest) toInput() retirement.Input {
	inflation := retirement.DefaultInflationRate
	if r.InflationRate != nil {
		inflation = percent(r.InflationRate)
	}

	return retirement.Input{
		CurrentAge:              intOr(r.CurrentAge, 0),
		RetirementAge:           intOr(r.RetirementAge, 0),
		LifeExpectancy:          intOr(r.LifeExpectancy, retirement.DefaultLifeExpectancy),
		CurrentSavings:          amount(r.CurrentSavings),
		MonthlyContribution:     amount(r.MonthlyContribution),
		ExpectedReturn:          percent(r.ExpectedReturn),
		InflationRate:           inflation,
		SocialSecurityIncome:    amount(r.SocialSecurityIncome),
		PensionIncome:           amount(r.PensionIncome),
		DesiredRetirementIncome: amount(r.DesiredRetirementIncome),
	}
}

// CalculateRetirement рассчитывает пенсионный прогноз.
func (h *CalculatorHandler) CalculateRetirement(c echo.Context) error {
	var req RetirementRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	result, err := h.Retirement.Project(req.toInput())
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	return c.JSON(http.StatusOK, result)
}
