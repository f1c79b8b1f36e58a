package growth

import (
	"fmt"

	"github.com/JosefinHao/financial-advisor/internal/insight"
	"github.com/JosefinHao/financial-advisor/internal/models"
)

type metrics struct {
	realRate         float64
	inflationRate    float64
	taxRate          float64
	contributionRise float64
}

func insights(in Input, realRate float64) []models.Insight {
	return insight.Evaluate(insightRules(), metrics{
		realRate:         realRate,
		inflationRate:    in.InflationRate,
		taxRate:          in.TaxRate,
		contributionRise: in.ContributionIncreaseRate,
	})
}

func insightRules() []insight.Rule[metrics] {
	return []insight.Rule[metrics]{
		{
			Severity: models.SeverityWarning,
			Title:    "Negative Real Return",
			When:     func(m metrics) bool { return m.realRate < 0 },
			Message: func(m metrics) string {
				return fmt.Sprintf("After inflation (%.1f%%) and taxes (%.1f%%), your real return is %.1f%%. Consider higher-yield investments.", m.inflationRate*100, m.taxRate*100, m.realRate*100)
			},
		},
		{
			Severity: models.SeverityInfo,
			Title:    "Low Real Return",
			When:     func(m metrics) bool { return m.realRate >= 0 && m.realRate < 0.02 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your real return after inflation and taxes is %.1f%%. Consider more aggressive investments for better growth.", m.realRate*100)
			},
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Good Real Return",
			When:     func(m metrics) bool { return m.realRate >= 0.02 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Your real return after inflation and taxes is %.1f%%. This should provide solid long-term growth.", m.realRate*100)
			},
		},
		{
			Severity: models.SeverityWarning,
			Title:    "High Inflation Impact",
			When:     func(m metrics) bool { return m.inflationRate > 0.03 },
			Message: func(m metrics) string {
				return fmt.Sprintf("High inflation (%.1f%%) significantly reduces your purchasing power. Consider inflation-protected investments.", m.inflationRate*100)
			},
		},
		{
			Severity: models.SeverityInfo,
			Title:    "High Tax Impact",
			When:     func(m metrics) bool { return m.taxRate > 0.25 },
			Message: func(m metrics) string {
				return fmt.Sprintf("High taxes (%.1f%%) reduce your returns. Consider tax-advantaged accounts like IRAs or 401(k)s.", m.taxRate*100)
			},
		},
		{
			Severity: models.SeveritySuccess,
			Title:    "Increasing Contributions",
			When:     func(m metrics) bool { return m.contributionRise > 0 },
			Message: func(m metrics) string {
				return fmt.Sprintf("Great strategy! Increasing contributions by %.1f%% annually will significantly boost your final balance.", m.contributionRise*100)
			},
		},
	}
}
