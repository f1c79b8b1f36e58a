package insight

import "github.com/JosefinHao/financial-advisor/internal/models"

// Rule описывает одно пороговое правило: если When истинно, добавляется инсайт.
type Rule[M any] struct {
	Severity models.Severity
	Title    string
	When     func(M) bool
	Message  func(M) string
}

// Evaluate проходит правила сверху вниз и возвращает инсайты всех сработавших правил.
func Evaluate[M any](rules []Rule[M], metrics M) []models.Insight {
	out := make([]models.Insight, 0, len(rules))
	for _, rule := range rules {
		if !rule.When(metrics) {
			continue
		}
		out = append(out, models.Insight{
			Severity: rule.Severity,
			Title:    rule.Title,
			Message:  rule.Message(metrics),
		})
	}
	return out
}

// Static возвращает функцию сообщения с фиксированным текстом.
func Static[M any](message string) func(M) string {
	return func(M) string { return message }
}
