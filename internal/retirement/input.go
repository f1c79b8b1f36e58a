package retirement

const (
	// DefaultLifeExpectancy используется, когда возраст дожития не передан.
	DefaultLifeExpectancy = 85
	// DefaultInflationRate задает годовую инфляцию по умолчанию.
	DefaultInflationRate = 0.025
	// GapWithdrawalRate используется как базовая ставка изъятия при анализе дефицита.
	GapWithdrawalRate = 0.04
)

// Input описывает параметры пенсионного прогноза. Ставки задаются долями.
type Input struct {
	CurrentAge              int     `json:"current_age" validate:"gte=18,lte=100"`
	RetirementAge           int     `json:"retirement_age" validate:"gtfield=CurrentAge,lte=100"`
	LifeExpectancy          int     `json:"life_expectancy" validate:"gtfield=RetirementAge,lte=120"`
	CurrentSavings          float64 `json:"current_savings" validate:"finite,gte=0,lte=1000000000000"`
	MonthlyContribution     float64 `json:"monthly_contribution" validate:"finite,gte=0,lte=1000000000000"`
	ExpectedReturn          float64 `json:"expected_return" validate:"finite,gte=0,lte=1"`
	InflationRate           float64 `json:"inflation_rate" validate:"finite,gte=0,lte=1"`
	SocialSecurityIncome    float64 `json:"social_security_income" validate:"finite,gte=0,lte=1000000000000"`
	PensionIncome           float64 `json:"pension_income" validate:"finite,gte=0,lte=1000000000000"`
	DesiredRetirementIncome float64 `json:"desired_retirement_income" validate:"finite,gte=0,lte=1000000000000"`
}

func (in Input) yearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

func (in Input) yearsInRetirement() int {
	return in.LifeExpectancy - in.RetirementAge
}
