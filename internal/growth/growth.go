package growth

import (
	"math"

	"github.com/JosefinHao/financial-advisor/internal/models"
	"github.com/JosefinHao/financial-advisor/internal/money"
	"github.com/JosefinHao/financial-advisor/internal/tvm"
	"github.com/JosefinHao/financial-advisor/internal/validation"
)

// Input описывает параметры сложного процента. Ставки задаются долями.
type Input struct {
	Principal                float64   `json:"principal" validate:"finite,gte=0,lte=1000000000000"`
	AnnualRate               float64   `json:"interest_rate" validate:"finite,gte=0,lte=1"`
	Years                    int       `json:"time_period" validate:"gte=1,lte=100"`
	Frequency                Frequency `json:"compounding_frequency" validate:"enum"`
	MonthlyContribution      float64   `json:"monthly_contribution" validate:"finite,gte=0,lte=1000000000000"`
	TaxRate                  float64   `json:"tax_rate" validate:"finite,gte=0,lte=1"`
	InflationRate            float64   `json:"inflation_rate" validate:"finite,gte=0,lte=1"`
	ContributionIncreaseRate float64   `json:"contribution_increase_rate" validate:"finite,gte=0,lte=1"`
}

// YearlyProjection хранит баланс на конец года и ежемесячный взнос этого года.
type YearlyProjection struct {
	models.ProjectionPoint
	MonthlyContribution float64 `json:"monthly_contribution"`
}

type Result struct {
	Principal                float64   `json:"principal"`
	InterestRate             float64   `json:"interest_rate"`
	TimePeriod               int       `json:"time_period"`
	CompoundingFrequency     Frequency `json:"compounding_frequency"`
	MonthlyContribution      float64   `json:"monthly_contribution"`
	TaxRate                  float64   `json:"tax_rate"`
	InflationRate            float64   `json:"inflation_rate"`
	ContributionIncreaseRate float64   `json:"contribution_increase_rate"`

	FinalAmount        float64 `json:"final_amount"`
	TotalContributions float64 `json:"total_contributions"`
	InterestEarned     float64 `json:"interest_earned"`
	EffectiveRate      float64 `json:"effective_rate"`
	RealRate           float64 `json:"real_rate"`

	InflationAdjustedBalance       float64 `json:"inflation_adjusted_balance"`
	InflationAdjustedContributions float64 `json:"inflation_adjusted_contributions"`
	InflationAdjustedInterest      float64 `json:"inflation_adjusted_interest"`
	PurchasingPowerLoss            float64 `json:"purchasing_power_loss"`

	YearlyProjections []YearlyProjection `json:"yearly_projections"`
	Insights          []models.Insight   `json:"insights"`
}

// Projector считает рост капитала со сложным процентом. Безопасен для конкурентного использования.
type Projector struct {
	validator *validation.Validator
}

func NewProjector(v *validation.Validator) *Projector {
	if v == nil {
		v = validation.New()
	}
	return &Projector{validator: v}
}

func (p *Projector) Project(in Input) (Result, error) {
	if err := p.validator.Validate(in); err != nil {
		return Result{}, err
	}

	return project(in), nil
}

func (in Input) effectiveRate() float64 {
	return in.AnnualRate * (1 - in.TaxRate)
}

// grow наращивает баланс за один год с ежемесячными взносами contribution.
func grow(balance, contribution, rate float64, f Frequency) float64 {
	if f == Continuously {
		return balance*math.Exp(rate) + contribution*12*math.Exp(rate/2)
	}

	n := float64(f.PeriodsPerYear())
	return balance*math.Pow(1+rate/n, n) +
		tvm.FutureValueAnnuity(contribution, tvm.MonthlyRateFromAnnual(rate), 12)
}

func project(in Input) Result {
	eff := in.effectiveRate()
	realRate := eff - in.InflationRate

	balance := in.Principal
	contributions := in.Principal
	points := make([]YearlyProjection, 0, in.Years+1)
	points = append(points, point(0, balance, contributions, in.MonthlyContribution))

	for year := 1; year <= in.Years; year++ {
		contribution := in.MonthlyContribution * math.Pow(1+in.ContributionIncreaseRate, float64(year-1))
		balance = grow(balance, contribution, eff, in.Frequency)
		contributions += contribution * 12
		points = append(points, point(year, balance, contributions, contribution))
	}

	interest := balance - contributions
	deflator := math.Pow(1+in.InflationRate, float64(in.Years))
	adjusted := balance / deflator

	return Result{
		Principal:                in.Principal,
		InterestRate:             money.Percent(in.AnnualRate, 4),
		TimePeriod:               in.Years,
		CompoundingFrequency:     in.Frequency,
		MonthlyContribution:      in.MonthlyContribution,
		TaxRate:                  money.Percent(in.TaxRate, 4),
		InflationRate:            money.Percent(in.InflationRate, 4),
		ContributionIncreaseRate: money.Percent(in.ContributionIncreaseRate, 4),

		FinalAmount:        money.Round(balance),
		TotalContributions: money.Round(contributions),
		InterestEarned:     money.Round(interest),
		EffectiveRate:      money.Percent(eff, 2),
		RealRate:           money.Percent(realRate, 2),

		InflationAdjustedBalance:       money.Round(adjusted),
		InflationAdjustedContributions: money.Round(contributions / deflator),
		InflationAdjustedInterest:      money.Round(interest / deflator),
		PurchasingPowerLoss:            money.Round(balance - adjusted),

		YearlyProjections: points,
		Insights:          insights(in, realRate),
	}
}

func point(year int, balance, contributions, monthly float64) YearlyProjection {
	return YearlyProjection{
		ProjectionPoint: models.ProjectionPoint{
			Year:          year,
			Balance:       money.Round(balance),
			Contributions: money.Round(contributions),
			Interest:      money.Round(balance - contributions),
		},
		MonthlyContribution: money.Round(monthly),
	}
}
