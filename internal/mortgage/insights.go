package mortgage

import (
	"fmt"
	"strconv"

	"github.com/JosefinHao/financial-advisor/internal/insight"
	"github.com/JosefinHao/financial-advisor/internal/models"
	"github.com/JosefinHao/financial-advisor/internal/money"
)

type metrics struct {
	downPaymentPct float64
	pmiMonthly     float64
	ratePct        float64
	termYears      int
	dti            float64
	annualIncome   float64
	incomeAssumed  bool
}

func insights(in Input, dti float64) []models.Insight {
	return insight.Evaluate(insightRules(), metrics{
		downPaymentPct: in.downPaymentPct(),
		pmiMonthly:     in.pmiMonthly(),
		ratePct:        money.Percent(in.InterestRate, 4),
		termYears:      in.LoanTermYears,
		dti:            dti,
		annualIncome:   in.AnnualIncome,
		incomeAssumed:  in.AnnualIncomeAssumed,
	})
}

func formatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

func insightRules() []insight.Rule[metrics] {
	return []insight.Rule[metrics]{
		{
			Severity: models.SeverityWarning,
			Title:    "Low Down Payment",
			When:     func(m metrics) bool { return m.downPaymentPct < pmiDownPaymentPct },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your %.1f%% down payment is below the recommended 20%%. You'll pay PMI of %s/month until you reach 20%% equity.", m.downPaymentPct, money.FormatCents(m.pmiMonthly))
			},
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Good Down Payment",
			When:     func(m metrics) bool { return m.downPaymentPct >= pmiDownPaymentPct },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your %.1f%% down payment is excellent! You avoid PMI and have better loan terms.", m.downPaymentPct)
			},
		},
		{
			Severity: models.SeverityWarning,
			Title:    "High Interest Rate",
			When:     func(m metrics) bool { return m.ratePct > 6 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your %s interest rate is relatively high. Consider improving your credit score or shopping around for better rates.", formatRate(m.ratePct))
			},
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Great Interest Rate",
			When:     func(m metrics) bool { return m.ratePct < 4 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your %s interest rate is excellent! You're getting very favorable terms.", formatRate(m.ratePct))
			},
		},
		{
			Severity: models.SeverityInfo,
			Title:    "30-Year Fixed Rate",
			When:     func(m metrics) bool { return m.termYears == 30 },
			Message:  insight.Static[metrics]("Standard 30-year term provides lower monthly payments but higher total interest. Consider a 15-year term if you can afford higher payments."),
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "15-Year Fixed Rate",
			When:     func(m metrics) bool { return m.termYears == 15 },
			Message:  insight.Static[metrics]("Great choice! 15-year terms typically have lower interest rates and save significantly on total interest."),
		},
		{
			Severity: models.SeverityWarning,
			Title:    "High Debt-to-Income Ratio",
			When:     func(m metrics) bool { return m.dti > 43 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your mortgage payment represents %.1f%% of your income, which is above the recommended 43%% maximum.", m.dti)
			},
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Good Debt-to-Income Ratio",
			When:     func(m metrics) bool { return m.dti <= 28 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your mortgage payment represents %.1f%% of your income, which is well within recommended limits.", m.dti)
			},
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Refinancing Opportunity",
			When:     func(m metrics) bool { return m.ratePct > 5 && m.termYears > 10 },
			Message:  insight.Static[metrics]("Consider refinancing if rates drop below your current rate. This could save thousands in interest over the loan term."),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Assumed Income",
			When:     func(m metrics) bool { return m.incomeAssumed },
			Message: func(m metrics) string {
				return fmt.Sprintf("Debt-to-income ratio assumes an annual income of %s. Provide your income for an accurate affordability check.", money.Format(m.annualIncome))
			},
		},
	}
}
