package mortgage

import (
	"github.com/JosefinHao/financial-advisor/internal/models"
	"github.com/JosefinHao/financial-advisor/internal/money"
	"github.com/JosefinHao/financial-advisor/internal/tvm"
	"github.com/JosefinHao/financial-advisor/internal/validation"
)

const (
	// DefaultLoanTermYears задает срок кредита по умолчанию.
	DefaultLoanTermYears = 30
	// PMI начисляется, пока остаток выше этой доли стоимости.
	pmiEquityThreshold = 0.8
	pmiDownPaymentPct  = 20
	summaryEdgeYears   = 5
	summaryMinTerm     = 10
)

// Input описывает ипотеку. LoanAmount содержит стоимость объекта, ставки задаются долями.
type Input struct {
	LoanAmount          float64 `json:"loan_amount" validate:"finite,gt=0,lte=1000000000000"`
	InterestRate        float64 `json:"interest_rate" validate:"finite,gte=0,lte=0.2"`
	LoanTermYears       int     `json:"loan_term_years" validate:"gte=1,lte=50"`
	DownPayment         float64 `json:"down_payment" validate:"finite,gte=0,ltfield=LoanAmount"`
	PropertyTaxAnnual   float64 `json:"property_tax" validate:"finite,gte=0,lte=1000000000000"`
	InsuranceAnnual     float64 `json:"insurance" validate:"finite,gte=0,lte=1000000000000"`
	PMIRate             float64 `json:"pmi_rate" validate:"finite,gte=0,lte=1"`
	AnnualIncome        float64 `json:"annual_income" validate:"finite,gt=0,lte=1000000000000"`
	AnnualIncomeAssumed bool    `json:"-"`
}

func (in Input) principal() float64 {
	return in.LoanAmount - in.DownPayment
}

func (in Input) downPaymentPct() float64 {
	return in.DownPayment / in.LoanAmount * 100
}

func (in Input) totalPayments() int {
	return in.LoanTermYears * 12
}

func (in Input) monthlyRate() float64 {
	return in.InterestRate / 12
}

func (in Input) monthlyEscrow() float64 {
	return in.PropertyTaxAnnual/12 + in.InsuranceAnnual/12
}

func (in Input) pmiMonthly() float64 {
	if in.downPaymentPct() >= pmiDownPaymentPct {
		return 0
	}
	return in.principal() * in.PMIRate / 12
}

// Entry описывает один платеж графика. Значения не округлены.
type Entry struct {
	Number    int     `json:"payment_number"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// YearSummary агрегирует платежи одного года.
type YearSummary struct {
	Year             int     `json:"year"`
	BeginningBalance float64 `json:"beginning_balance"`
	TotalPayment     float64 `json:"total_payment"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	EndingBalance    float64 `json:"ending_balance"`
}

type LoanSummary struct {
	LoanAmount          float64 `json:"loan_amount"`
	DownPayment         float64 `json:"down_payment"`
	InterestRate        float64 `json:"interest_rate"`
	LoanTermYears       int     `json:"loan_term_years"`
	PropertyTaxAnnual   float64 `json:"property_tax_annual"`
	InsuranceAnnual     float64 `json:"insurance_annual"`
	PMIRate             float64 `json:"pmi_rate"`
	AnnualIncome        float64 `json:"annual_income"`
	AnnualIncomeAssumed bool    `json:"annual_income_assumed"`
}

type Result struct {
	MonthlyPayment        float64          `json:"monthly_payment"`
	TotalMonthlyPayment   float64          `json:"total_monthly_payment"`
	TotalInterest         float64          `json:"total_interest"`
	TotalPayments         float64          `json:"total_payments"`
	TotalCost             float64          `json:"total_cost"`
	Principal             float64          `json:"principal"`
	DownPaymentPercentage float64          `json:"down_payment_percentage"`
	PMIMonthly            float64          `json:"pmi_monthly"`
	PMIMonths             int              `json:"pmi_months"`
	TotalPMI              float64          `json:"total_pmi"`
	DebtToIncomeRatio     float64          `json:"debt_to_income_ratio"`
	AmortizationSchedule  []YearSummary    `json:"amortization_schedule"`
	Insights              []models.Insight `json:"insights"`
	LoanSummary           LoanSummary      `json:"loan_summary"`
}

// Amortizer рассчитывает ипотечные платежи. Безопасен для конкурентного использования.
type Amortizer struct {
	validator *validation.Validator
}

func NewAmortizer(v *validation.Validator) *Amortizer {
	if v == nil {
		v = validation.New()
	}
	return &Amortizer{validator: v}
}

// Amortize проверяет вход и возвращает расчет с сокращенным годовым графиком.
func (a *Amortizer) Amortize(in Input) (Result, error) {
	if err := a.validator.Validate(in); err != nil {
		return Result{}, err
	}

	return amortize(in), nil
}

// Ledger проверяет вход и возвращает полный помесячный график.
func (a *Amortizer) Ledger(in Input) ([]Entry, error) {
	if err := a.validator.Validate(in); err != nil {
		return nil, err
	}

	return buildLedger(in).entries, nil
}

type ledger struct {
	payment       float64
	entries       []Entry
	totalInterest float64
	pmiMonths     int
	totalPMI      float64
}

func buildLedger(in Input) ledger {
	n := in.totalPayments()
	rate := in.monthlyRate()
	pmi := in.pmiMonthly()
	pmiLimit := in.LoanAmount * pmiEquityThreshold

	l := ledger{
		payment: tvm.AmortizedPayment(in.principal(), rate, n),
		entries: make([]Entry, 0, n),
	}

	balance := in.principal()
	for i := 1; i <= n; i++ {
		if pmi > 0 && balance > pmiLimit {
			l.pmiMonths++
			l.totalPMI += pmi
		}

		interest := balance * rate
		principal := l.payment - interest
		if i == n || principal > balance {
			principal = balance
		}
		balance -= principal
		l.totalInterest += interest

		l.entries = append(l.entries, Entry{
			Number:    i,
			Payment:   principal + interest,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return l
}

func amortize(in Input) Result {
	l := buildLedger(in)
	n := in.totalPayments()
	pmi := in.pmiMonthly()

	totalMonthly := l.payment + in.monthlyEscrow() + pmi
	totalPayments := in.principal() + l.totalInterest + in.monthlyEscrow()*float64(n) + l.totalPMI
	dti := totalMonthly * 12 / in.AnnualIncome * 100

	return Result{
		MonthlyPayment:        money.Round(l.payment),
		TotalMonthlyPayment:   money.Round(totalMonthly),
		TotalInterest:         money.Round(l.totalInterest),
		TotalPayments:         money.Round(totalPayments),
		TotalCost:             money.Round(totalPayments + in.DownPayment),
		Principal:             money.Round(in.principal()),
		DownPaymentPercentage: money.RoundTo(in.downPaymentPct(), 1),
		PMIMonthly:            money.Round(pmi),
		PMIMonths:             l.pmiMonths,
		TotalPMI:              money.Round(l.totalPMI),
		DebtToIncomeRatio:     money.RoundTo(dti, 1),
		AmortizationSchedule:  summarize(l.entries, in.LoanTermYears, in.principal()),
		Insights:              insights(in, dti),
		LoanSummary: LoanSummary{
			LoanAmount:          in.LoanAmount,
			DownPayment:         in.DownPayment,
			InterestRate:        money.Percent(in.InterestRate, 4),
			LoanTermYears:       in.LoanTermYears,
			PropertyTaxAnnual:   in.PropertyTaxAnnual,
			InsuranceAnnual:     in.InsuranceAnnual,
			PMIRate:             money.Percent(in.PMIRate, 4),
			AnnualIncome:        in.AnnualIncome,
			AnnualIncomeAssumed: in.AnnualIncomeAssumed,
		},
	}
}

// summarize возвращает первые пять лет и, для сроков длиннее десяти лет, последние пять.
func summarize(entries []Entry, termYears int, principal float64) []YearSummary {
	years := make([]int, 0, 2*summaryEdgeYears)
	for y := 1; y <= min(summaryEdgeYears, termYears); y++ {
		years = append(years, y)
	}
	if termYears > summaryMinTerm {
		for y := termYears - summaryEdgeYears + 1; y <= termYears; y++ {
			years = append(years, y)
		}
	}

	out := make([]YearSummary, 0, len(years))
	for _, y := range years {
		out = append(out, yearSummary(entries, y, principal))
	}
	return out
}

func yearSummary(entries []Entry, year int, principal float64) YearSummary {
	first := (year - 1) * 12
	opening := principal
	if first > 0 {
		opening = entries[first-1].Balance
	}

	var payment, paidPrincipal, paidInterest float64
	for _, e := range entries[first : first+12] {
		payment += e.Payment
		paidPrincipal += e.Principal
		paidInterest += e.Interest
	}

	return YearSummary{
		Year:             year,
		BeginningBalance: money.Round(opening),
		TotalPayment:     money.Round(payment),
		PrincipalPaid:    money.Round(paidPrincipal),
		InterestPaid:     money.Round(paidInterest),
		EndingBalance:    money.Round(entries[first+11].Balance),
	}
}
