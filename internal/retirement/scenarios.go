package retirement

import (
	"fmt"
	"math"
	"strconv"

	"github.com/JosefinHao/financial-advisor/internal/money"
	"github.com/JosefinHao/financial-advisor/internal/tvm"
)

const (
	maxReasonableReturnIncrease = 0.05
	maxReasonableExtraYears     = 10
)

// SustainableYears хранит срок, на который хватит капитала, или признак бессрочности.
type SustainableYears struct {
	Years      float64
	Indefinite bool
}

// MarshalJSON пишет число лет или строку "Indefinite".
func (s SustainableYears) MarshalJSON() ([]byte, error) {
	if s.Indefinite {
		return []byte(`"Indefinite"`), nil
	}
	return strconv.AppendFloat(nil, s.Years, 'f', -1, 64), nil
}

type WithdrawalScenario struct {
	Method            string           `json:"method"`
	WithdrawalRate    float64          `json:"withdrawal_rate"`
	AnnualWithdrawal  float64          `json:"annual_withdrawal"`
	MonthlyWithdrawal float64          `json:"monthly_withdrawal"`
	YearsSustainable  SustainableYears `json:"years_sustainable"`
	Description       string           `json:"description"`
}

type withdrawalMethod struct {
	rate        float64
	name        string
	description string
}

func withdrawalMethods() []withdrawalMethod {
	return []withdrawalMethod{
		{0.03, "Conservative (3% Rule)", "Very safe withdrawal rate, designed to preserve capital for 30+ years"},
		{0.04, "Standard (4% Rule)", "Traditional retirement withdrawal rate, typically sustainable for 30 years"},
		{0.05, "Aggressive (5% Rule)", "Higher withdrawal rate, may require portfolio adjustments in market downturns"},
	}
}

func withdrawalScenarios(futureValue, realReturn float64) []WithdrawalScenario {
	methods := withdrawalMethods()
	out := make([]WithdrawalScenario, 0, len(methods))
	for _, m := range methods {
		annual := futureValue * m.rate
		out = append(out, WithdrawalScenario{
			Method:            m.name,
			WithdrawalRate:    money.Percent(m.rate, 2),
			AnnualWithdrawal:  money.Round(annual),
			MonthlyWithdrawal: money.Round(annual / 12),
			YearsSustainable:  sustainableYears(futureValue, annual, realReturn),
			Description:       m.description,
		})
	}
	return out
}

// sustainableYears считает срок исчерпания капитала при реальной доходности realReturn.
func sustainableYears(futureValue, withdrawal, realReturn float64) SustainableYears {
	if withdrawal <= futureValue*realReturn {
		return SustainableYears{Indefinite: true}
	}

	switch {
	case 1+realReturn <= 0:
		return SustainableYears{}
	case realReturn == 0:
		return SustainableYears{Years: money.RoundTo(futureValue/withdrawal, 1)}
	}

	years := math.Log(withdrawal/(withdrawal-futureValue*realReturn)) / math.Log(1+realReturn)
	return SustainableYears{Years: money.RoundTo(years, 1)}
}

// CatchUpKind определяет вид сценария сокращения дефицита.
type CatchUpKind uint8

const (
	CatchUpAdditionalSavings CatchUpKind = iota + 1
	CatchUpHigherReturn
	CatchUpWorkLonger
	CatchUpAdjustGoal
)

func (k CatchUpKind) String() string {
	switch k {
	case CatchUpAdditionalSavings:
		return "additional_savings"
	case CatchUpHigherReturn:
		return "higher_return"
	case CatchUpWorkLonger:
		return "work_longer"
	case CatchUpAdjustGoal:
		return "adjust_goal"
	default:
		return fmt.Sprintf("CatchUpKind(%d)", uint8(k))
	}
}

func (k CatchUpKind) MarshalText() ([]byte, error) {
	switch k {
	case CatchUpAdditionalSavings, CatchUpHigherReturn, CatchUpWorkLonger, CatchUpAdjustGoal:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown catch-up kind %d", uint8(k))
	}
}

// CatchUpScenario описывает способ закрыть дефицит. Заполняются только поля своего вида.
type CatchUpScenario struct {
	Kind        CatchUpKind `json:"kind"`
	Scenario    string      `json:"scenario"`
	Description string      `json:"description"`
	Feasible    bool        `json:"feasible"`

	AdditionalMonthlySavings *float64 `json:"additional_monthly_savings,omitempty"`
	NewTotalMonthlySavings   *float64 `json:"new_total_monthly_savings,omitempty"`
	RequiredReturnRate       *float64 `json:"required_return_rate,omitempty"`
	CurrentReturnRate        *float64 `json:"current_return_rate,omitempty"`
	AdditionalYears          *float64 `json:"additional_years,omitempty"`
	NewRetirementAge         *float64 `json:"new_retirement_age,omitempty"`
	AchievableIncome         *float64 `json:"achievable_income,omitempty"`
	CurrentGoal              *float64 `json:"current_goal,omitempty"`
}

func ptr(v float64) *float64 {
	return &v
}

// catchUpScenarios возвращает пустой список, если дефицита нет.
func catchUpScenarios(in Input, pr projection) []CatchUpScenario {
	out := make([]CatchUpScenario, 0, 4)
	if pr.savingsGap <= 0 {
		return out
	}

	shortfall := pr.savingsGap / GapWithdrawalRate
	target := pr.futureValue + shortfall

	return append(out,
		additionalSavingsScenario(in, pr, shortfall),
		higherReturnScenario(in, pr, target),
		workLongerScenario(in, pr, target),
		adjustGoalScenario(in, pr),
	)
}

func additionalSavingsScenario(in Input, pr projection, shortfall float64) CatchUpScenario {
	extra := tvm.SolveRequiredPayment(shortfall, pr.monthlyRate, pr.years*12)

	s := CatchUpScenario{
		Kind:                     CatchUpAdditionalSavings,
		Feasible:                 true,
		AdditionalMonthlySavings: ptr(money.Round(extra)),
		NewTotalMonthlySavings:   ptr(money.Round(in.MonthlyContribution + extra)),
	}

	switch {
	case extra <= 1:
		s.Scenario = "Almost There!"
		s.Description = fmt.Sprintf("You're very close to your goal! Just %s more per month would close the gap completely.", money.FormatCents(extra))
	case extra < 1000:
		s.Scenario = "Increase Monthly Savings"
		s.Description = fmt.Sprintf("Save an additional %s per month to close the gap", money.Format(extra))
	default:
		s.Scenario = "Significant Gap"
		s.Description = fmt.Sprintf("The gap is quite large (%s/month needed). Consider the other options below.", money.Format(extra))
		s.Feasible = false
	}
	return s
}

func higherReturnScenario(in Input, pr projection, target float64) CatchUpScenario {
	current := in.ExpectedReturn * 100
	s := CatchUpScenario{
		Kind:              CatchUpHigherReturn,
		Scenario:          "Investment Returns",
		CurrentReturnRate: ptr(money.RoundTo(current, 2)),
	}

	required, ok := tvm.SolveAnnualRate(in.CurrentSavings, in.MonthlyContribution, pr.years, target)
	if !ok {
		s.Description = "No realistic investment return closes the gap from current savings. Consider other options."
		return s
	}

	s.RequiredReturnRate = ptr(money.Percent(required, 2))
	if required <= in.ExpectedReturn+maxReasonableReturnIncrease {
		s.Scenario = "Increase Investment Returns"
		s.Description = fmt.Sprintf("Need %.1f%% annual return vs current %.1f%%", required*100, current)
		s.Feasible = true
		return s
	}

	s.Description = fmt.Sprintf("Required return (%.1f%%) is significantly higher than your current expectation (%.1f%%). Consider other options.", required*100, current)
	return s
}

func workLongerScenario(in Input, pr projection, target float64) CatchUpScenario {
	s := CatchUpScenario{
		Kind:     CatchUpWorkLonger,
		Scenario: "Work Longer",
	}

	extra, ok := tvm.YearsToGrow(pr.futureValue, in.ExpectedReturn, target)
	if !ok {
		s.Description = "Working longer cannot close the gap without investment growth on existing savings. Consider other options."
		return s
	}

	s.AdditionalYears = ptr(money.RoundTo(extra, 1))
	s.NewRetirementAge = ptr(money.RoundTo(float64(in.RetirementAge)+extra, 1))
	if extra <= maxReasonableExtraYears {
		s.Description = fmt.Sprintf("Work %.1f additional years to reach your goal", extra)
		s.Feasible = true
		return s
	}

	s.Description = fmt.Sprintf("Would need to work %.1f additional years - consider adjusting your retirement income goal instead", extra)
	return s
}

func adjustGoalScenario(in Input, pr projection) CatchUpScenario {
	achievable := pr.inflationAdjustedIncome + pr.futureValue*GapWithdrawalRate
	return CatchUpScenario{
		Kind:             CatchUpAdjustGoal,
		Scenario:         "Adjust Retirement Income Goal",
		Description:      fmt.Sprintf("Reduce annual retirement income goal to %s", money.Format(achievable)),
		Feasible:         true,
		AchievableIncome: ptr(money.Round(achievable)),
		CurrentGoal:      ptr(in.DesiredRetirementIncome),
	}
}
