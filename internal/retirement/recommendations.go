package retirement

import (
	"fmt"

	"github.com/JosefinHao/financial-advisor/internal/insight"
	"github.com/JosefinHao/financial-advisor/internal/models"
	"github.com/JosefinHao/financial-advisor/internal/money"
)

type metrics struct {
	futureValue         float64
	expectedReturn      float64
	monthlyContribution float64
	savingsGap          float64
	yearsToRetirement   int
	socialSecurity      float64
	pension             float64
	inflationRate       float64
}

func recommendations(in Input, pr projection) []models.Insight {
	return insight.Evaluate(recommendationRules(), metrics{
		futureValue:         pr.futureValue,
		expectedReturn:      in.ExpectedReturn,
		monthlyContribution: in.MonthlyContribution,
		savingsGap:          pr.savingsGap,
		yearsToRetirement:   pr.years,
		socialSecurity:      in.SocialSecurityIncome,
		pension:             in.PensionIncome,
		inflationRate:       in.InflationRate,
	})
}

func recommendationRules() []insight.Rule[metrics] {
	return []insight.Rule[metrics]{
		{
			Severity: models.SeveritySuccess,
			Title:    "On Track",
			When:     func(m metrics) bool { return m.futureValue > 1_000_000 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Excellent! Projected savings of %s put you on track for a comfortable retirement", money.Format(m.futureValue))
			},
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Good Progress",
			When:     func(m metrics) bool { return m.futureValue > 500_000 && m.futureValue <= 1_000_000 },
			Message:  insight.Static[metrics]("Good progress! Consider increasing your savings rate for more security"),
		},
		{
			Severity: models.SeverityWarning,
			Title:    "Boost Your Savings",
			When:     func(m metrics) bool { return m.futureValue <= 500_000 },
			Message:  insight.Static[metrics]("Consider increasing your monthly contributions or extending your working years"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Diversify",
			When:     func(m metrics) bool { return m.expectedReturn < 0.05 },
			Message:  insight.Static[metrics]("Consider diversifying your investments for potentially higher returns"),
		},
		{
			Severity: models.SeverityWarning,
			Title:    "Optimistic Returns",
			When:     func(m metrics) bool { return m.expectedReturn > 0.10 },
			Message:  insight.Static[metrics]("Your expected return may be optimistic - consider more conservative planning"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Increase Contributions",
			When:     func(m metrics) bool { return m.monthlyContribution < 500 },
			Message:  insight.Static[metrics]("Try to increase your monthly savings if possible - even small increases help"),
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Strong Savings Discipline",
			When:     func(m metrics) bool { return m.monthlyContribution > 2000 },
			Message:  insight.Static[metrics]("Great savings discipline! You're building a strong retirement foundation"),
		},
		{
			Severity: models.SeverityWarning,
			Title:    "Income Gap",
			When:     func(m metrics) bool { return m.savingsGap > 0 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Projected income falls %s a year short of your goal. You may need to save more or work longer", money.Format(m.savingsGap))
			},
		},
		{
			Severity: models.SeverityWarning,
			Title:    "Significant Gap",
			When:     func(m metrics) bool { return m.savingsGap > 100_000 },
			Message:  insight.Static[metrics]("Significant gap detected - consider consulting a financial advisor"),
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Income Goal Met",
			When:     func(m metrics) bool { return m.savingsGap <= 0 },
			Message:  insight.Static[metrics]("Your projected savings should meet your retirement income needs"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Near Retirement",
			When:     func(m metrics) bool { return m.yearsToRetirement < 10 },
			Message:  insight.Static[metrics]("You're close to retirement - focus on capital preservation and reducing risk"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Long Horizon",
			When:     func(m metrics) bool { return m.yearsToRetirement > 30 },
			Message:  insight.Static[metrics]("You have time on your side - consider more aggressive investment strategies"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Social Security",
			When:     func(m metrics) bool { return m.socialSecurity == 0 },
			Message:  insight.Static[metrics]("Consider your Social Security benefits in your retirement planning"),
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Pension Income",
			When:     func(m metrics) bool { return m.pension == 0 },
			Message:  insight.Static[metrics]("If available, employer pensions can significantly boost retirement income"),
		},
		{
			Severity: models.SeverityWarning,
			Title:    "High Inflation",
			When:     func(m metrics) bool { return m.inflationRate > 0.03 },
			Message:  insight.Static[metrics]("Higher inflation expected - ensure your investments can outpace inflation"),
		},
	}
}
