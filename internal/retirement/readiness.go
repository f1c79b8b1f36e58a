package retirement

import (
	"fmt"
	"math"
)

// Level задает уровень готовности к пенсии.
type Level uint8

const (
	LevelNeedsAttention Level = iota + 1
	LevelFair
	LevelGood
	LevelExcellent
)

func (l Level) String() string {
	switch l {
	case LevelNeedsAttention:
		return "Needs Attention"
	case LevelFair:
		return "Fair"
	case LevelGood:
		return "Good"
	case LevelExcellent:
		return "Excellent"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Description возвращает фиксированное пояснение к уровню.
func (l Level) Description() string {
	switch l {
	case LevelExcellent:
		return "You're well-prepared for retirement"
	case LevelGood:
		return "You're on track but could improve"
	case LevelFair:
		return "You need to make some adjustments"
	default:
		return "Significant changes needed to reach your goals"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if l < LevelNeedsAttention || l > LevelExcellent {
		return nil, fmt.Errorf("unknown readiness level %d", uint8(l))
	}
	return []byte(l.String()), nil
}

func levelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelNeedsAttention
	}
}

// Readiness хранит балл готовности от 0 до 100 и его уровень.
type Readiness struct {
	Score int
	Level Level
}

func readiness(in Input, pr projection) Readiness {
	total := savingsAdequacyPoints(in, pr) +
		horizonPoints(pr.years) +
		savingsRatePoints(in) +
		returnPoints(in.ExpectedReturn)

	score := int(math.Min(math.Round(total), 100))
	return Readiness{Score: score, Level: levelFor(score)}
}

func savingsAdequacyPoints(in Input, pr projection) float64 {
	if in.DesiredRetirementIncome == 0 {
		return 40
	}
	return math.Min(pr.futureValue/(in.DesiredRetirementIncome/GapWithdrawalRate), 1) * 40
}

func horizonPoints(years int) float64 {
	switch {
	case years >= 20:
		return 20
	case years >= 10:
		return 15
	case years >= 5:
		return 10
	default:
		return 5
	}
}

func savingsRatePoints(in Input) float64 {
	if in.DesiredRetirementIncome == 0 {
		if in.MonthlyContribution > 0 {
			return 20
		}
		return 5
	}

	rate := in.MonthlyContribution * 12 / in.DesiredRetirementIncome
	switch {
	case rate >= 0.15:
		return 20
	case rate >= 0.10:
		return 15
	case rate >= 0.05:
		return 10
	default:
		return 5
	}
}

func returnPoints(expectedReturn float64) float64 {
	switch {
	case expectedReturn >= 0.07:
		return 20
	case expectedReturn >= 0.05:
		return 15
	case expectedReturn >= 0.03:
		return 10
	default:
		return 5
	}
}
