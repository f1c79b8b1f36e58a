package retirement

import (
	"github.com/JosefinHao/financial-advisor/internal/models"
	"github.com/JosefinHao/financial-advisor/internal/money"
	"github.com/JosefinHao/financial-advisor/internal/tvm"
	"github.com/JosefinHao/financial-advisor/internal/validation"
)

// YearlyProjection хранит накопления на конец года и возраст клиента.
type YearlyProjection struct {
	models.ProjectionPoint
	Age int `json:"age"`
}

// Result содержит полный пенсионный прогноз. Ставки в результате указаны в процентах.
type Result struct {
	CurrentAge              int     `json:"current_age"`
	RetirementAge           int     `json:"retirement_age"`
	LifeExpectancy          int     `json:"life_expectancy"`
	YearsToRetirement       int     `json:"years_to_retirement"`
	YearsInRetirement       int     `json:"years_in_retirement"`
	CurrentSavings          float64 `json:"current_savings"`
	MonthlyContribution     float64 `json:"monthly_contribution"`
	ExpectedReturn          float64 `json:"expected_return"`
	InflationRate           float64 `json:"inflation_rate"`
	ProjectedSavings        float64 `json:"projected_savings"`
	TotalContributions      float64 `json:"total_contributions"`
	InterestEarned          float64 `json:"interest_earned"`
	SocialSecurityIncome    float64 `json:"social_security_income"`
	PensionIncome           float64 `json:"pension_income"`
	DesiredRetirementIncome float64 `json:"desired_retirement_income"`
	InflationAdjustedIncome float64 `json:"inflation_adjusted_income"`
	SavingsGap              float64 `json:"savings_gap"`

	YearlyProjections   []YearlyProjection   `json:"yearly_projections"`
	WithdrawalScenarios []WithdrawalScenario `json:"withdrawal_scenarios"`
	CatchUpScenarios    []CatchUpScenario    `json:"catch_up_scenarios"`
	Recommendations     []models.Insight     `json:"recommendations"`

	ReadinessScore       int    `json:"readiness_score"`
	ReadinessLevel       Level  `json:"readiness_level"`
	ReadinessDescription string `json:"readiness_description"`
}

// Projector строит пенсионные прогнозы. Безопасен для конкурентного использования.
type Projector struct {
	validator *validation.Validator
}

func NewProjector(v *validation.Validator) *Projector {
	if v == nil {
		v = validation.New()
	}
	return &Projector{validator: v}
}

// Project проверяет вход и рассчитывает прогноз. Ошибка валидации имеет тип *validation.Error.
func (p *Projector) Project(in Input) (Result, error) {
	if err := p.validator.Validate(in); err != nil {
		return Result{}, err
	}

	return project(in), nil
}

// projection хранит промежуточные значения без округления.
type projection struct {
	years                   int
	monthlyRate             float64
	futureValue             float64
	totalContributions      float64
	inflationAdjustedIncome float64
	savingsGap              float64
}

func newProjection(in Input) projection {
	years := in.yearsToRetirement()
	futureValue := tvm.SavingsValue(in.CurrentSavings, in.MonthlyContribution, in.ExpectedReturn, years)
	income := (in.SocialSecurityIncome + in.PensionIncome) * 12 * tvm.FutureValueLumpSum(1, in.InflationRate, float64(years))

	return projection{
		years:                   years,
		monthlyRate:             tvm.MonthlyRateFromAnnual(in.ExpectedReturn),
		futureValue:             futureValue,
		totalContributions:      in.CurrentSavings + in.MonthlyContribution*12*float64(years),
		inflationAdjustedIncome: income,
		savingsGap:              in.DesiredRetirementIncome - income - futureValue*GapWithdrawalRate,
	}
}

func project(in Input) Result {
	pr := newProjection(in)
	score := readiness(in, pr)

	return Result{
		CurrentAge:              in.CurrentAge,
		RetirementAge:           in.RetirementAge,
		LifeExpectancy:          in.LifeExpectancy,
		YearsToRetirement:       pr.years,
		YearsInRetirement:       in.yearsInRetirement(),
		CurrentSavings:          in.CurrentSavings,
		MonthlyContribution:     in.MonthlyContribution,
		ExpectedReturn:          money.Percent(in.ExpectedReturn, 4),
		InflationRate:           money.Percent(in.InflationRate, 4),
		ProjectedSavings:        money.Round(pr.futureValue),
		TotalContributions:      money.Round(pr.totalContributions),
		InterestEarned:          money.Round(pr.futureValue - pr.totalContributions),
		SocialSecurityIncome:    in.SocialSecurityIncome,
		PensionIncome:           in.PensionIncome,
		DesiredRetirementIncome: in.DesiredRetirementIncome,
		InflationAdjustedIncome: money.Round(pr.inflationAdjustedIncome),
		SavingsGap:              money.Round(pr.savingsGap),
		YearlyProjections:       yearlyProjections(in, pr.years),
		WithdrawalScenarios:     withdrawalScenarios(pr.futureValue, in.ExpectedReturn-in.InflationRate),
		CatchUpScenarios:        catchUpScenarios(in, pr),
		Recommendations:         recommendations(in, pr),
		ReadinessScore:          score.Score,
		ReadinessLevel:          score.Level,
		ReadinessDescription:    score.Level.Description(),
	}
}

func yearlyProjections(in Input, years int) []YearlyProjection {
	out := make([]YearlyProjection, 0, years+1)
	for year := 0; year <= years; year++ {
		balance := tvm.SavingsValue(in.CurrentSavings, in.MonthlyContribution, in.ExpectedReturn, year)
		contributions := in.CurrentSavings + in.MonthlyContribution*12*float64(year)

		out = append(out, YearlyProjection{
			ProjectionPoint: models.ProjectionPoint{
				Year:          year,
				Balance:       money.Round(balance),
				Contributions: money.Round(contributions),
				Interest:      money.Round(balance - contributions),
			},
			Age: in.CurrentAge + year,
		})
	}
	return out
}
